package domain

// EnforceRequest lives outside package rbac so middleware can depend on it
// without importing rbac (rbac routes import middleware).
type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=read create update delete"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
