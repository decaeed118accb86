package middleware

import "github.com/gin-gonic/gin"

// Stack is the middleware every resource group runs, in order. Nil entries
// are skipped.
type Stack struct {
	Auth        gin.HandlerFunc
	Logger      gin.HandlerFunc
	RateLimit   gin.HandlerFunc
	Idempotency gin.HandlerFunc
}

func (s Stack) Group(r *gin.RouterGroup, path string) *gin.RouterGroup {
	group := r.Group(path)
	for _, h := range []gin.HandlerFunc{s.Auth, s.Logger, s.RateLimit, s.Idempotency} {
		if h != nil {
			group.Use(h)
		}
	}
	return group
}
