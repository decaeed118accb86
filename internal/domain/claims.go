package domain

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of the access token issued at login.
type AccessClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Gin context keys set by the auth middleware.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxRole      = "role"
	CtxRequestID = "request_id"
)
