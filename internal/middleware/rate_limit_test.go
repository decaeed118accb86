package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid != "" {
			c.Set(domain.CtxUserID, uid)
		}
		c.Next()
	})
	r.GET("/ping", RateLimitByUser(0.0001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1"))
	assert.Equal(t, http.StatusOK, call("2"), "buckets are per user")
	assert.Equal(t, http.StatusOK, call(""), "anonymous requests are not limited")
	assert.Equal(t, http.StatusOK, call(""))
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimitByIP(0.0001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestKeyedRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	k := NewKeyedRateLimiter(0.0001, 1)
	k.now = func() time.Time { return now }
	k.lastSweep = now

	first := k.GetLimiter("10.0.0.1")
	require.True(t, first.Allow())
	k.GetLimiter("10.0.0.2")
	assert.Equal(t, 2, k.Len())

	now = now.Add(idleTTL / 2)
	assert.Same(t, first, k.GetLimiter("10.0.0.1"), "active keys keep their bucket")

	now = now.Add(idleTTL)
	k.GetLimiter("10.0.0.3")
	assert.Equal(t, 1, k.Len(), "idle keys are dropped on the next sweep")

	assert.True(t, k.GetLimiter("10.0.0.1").Allow(), "an evicted key starts with a full bucket")
}
