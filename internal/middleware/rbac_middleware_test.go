package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func newRBACRouter(svc RBACService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(domain.CtxUserID, userID)
			c.Set(domain.CtxRole, role)
		}
		c.Next()
	})
	r.GET("/api/Salary", RBACAuthorize(svc, "salary", "read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := httptest.NewRecorder()
		newRBACRouter(svc, "1", "Admin").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/Salary", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: "Admin", Resource: "salary", Action: "read"}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{}, "2", "User").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/Salary", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "salary:read")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{allowed: true}, "", "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/Salary", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{err: errors.New("boom")}, "1", "Admin").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/Salary", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
