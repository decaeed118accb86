package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=72"`
}

type UserResponse struct {
	UserID      uint    `json:"userId"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	LastLoginAt *string `json:"lastLoginAt"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   string       `json:"expiresAt"`
}

// LoginResult carries the token expiry as a time so the handler can size the
// cookie.
type LoginResult struct {
	User        UserResponse
	AccessToken string
	ExpiresAt   time.Time
}
