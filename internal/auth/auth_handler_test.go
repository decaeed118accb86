package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/auth"
	autherrors "github.com/bruno-marques98/CoreCrewApp/internal/auth/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	LoginFn func(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error)
	MeFn    func(ctx context.Context, userID uint) (auth.UserResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) Me(ctx context.Context, userID uint) (auth.UserResponse, error) {
	return f.MeFn(ctx, userID)
}
func (f *fakeAuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	return false, nil
}

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(domain.CtxUserID, userID)
		c.Next()
	}
}

func setupRouter(svc auth.Service, userID string) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth.RegisterRoutes(r.Group("/api"), auth.NewHandler(svc, false), fakeAuth(userID))
	return r
}

func findCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			return c
		}
	}
	return nil
}

func loginRequest(body, userAgent string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req
}

func TestHandler_Login(t *testing.T) {
	svc := &fakeAuthService{
		LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
			if req.Password != "good" {
				return auth.LoginResult{}, autherrors.ErrInvalidCredentials
			}
			return auth.LoginResult{
				User:        auth.UserResponse{UserID: 1, Email: req.Email, Role: "Admin"},
				AccessToken: "signed.jwt.token",
				ExpiresAt:   time.Now().Add(time.Hour),
			}, nil
		},
	}
	r := setupRouter(svc, "1")

	t.Run("browser gets a cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, loginRequest(`{"email":"a@b.co","password":"good"}`, "Mozilla/5.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		cookie := findCookie(w)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed.jwt.token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		var env struct {
			Ok   bool               `json:"ok"`
			Data auth.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "signed.jwt.token", env.Data.AccessToken)
		assert.Equal(t, "Admin", env.Data.User.Role)
	})

	t.Run("api client gets the token in the body only", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, loginRequest(`{"email":"a@b.co","password":"good"}`, "curl/8.0"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, findCookie(w))
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, loginRequest(`{"email":"a@b.co","password":"bad"}`, ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, loginRequest(`{"email":"not-an-email"}`, ""))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	svc := &fakeAuthService{
		MeFn: func(ctx context.Context, userID uint) (auth.UserResponse, error) {
			return auth.UserResponse{UserID: userID, Email: "a@b.co", Role: "User"}, nil
		},
	}

	w := httptest.NewRecorder()
	setupRouter(svc, "7").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)

	w = httptest.NewRecorder()
	setupRouter(svc, "not-a-number").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(&fakeAuthService{}, "1").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := findCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
