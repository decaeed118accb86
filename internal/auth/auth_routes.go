package auth

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth. Login is throttled per client IP, roughly one
// attempt every twelve seconds after a burst of five.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", authMiddleware, middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
