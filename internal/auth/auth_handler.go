package auth

import (
	"net/http"
	"strconv"
	"time"

	autherrors "github.com/bruno-marques98/CoreCrewApp/internal/auth/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler marks the access_token cookie Secure when secureCookie is set
// (production).
func NewHandler(service Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookie: secureCookie, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	client := request.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if request.IsWebClient(client) {
		maxAge := int(time.Until(result.ExpiresAt).Seconds())
		if maxAge < 1 {
			maxAge = 1
		}
		h.setTokenCookie(c, result.AccessToken, maxAge)
	}

	h.logger.Debug("login succeeded", zap.Uint("user_id", result.User.UserID), zap.String("client", string(client)))

	response.Success(c, http.StatusOK, LoginResponse{
		User:        result.User,
		AccessToken: result.AccessToken,
		ExpiresAt:   request.FormatTimestamp(result.ExpiresAt),
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	id, err := strconv.ParseUint(c.GetString(domain.CtxUserID), 10, 64)
	if err != nil || id == 0 {
		h.writeServiceError(c, autherrors.ErrInvalidToken)
		return
	}

	resp, err := h.service.Me(c.Request.Context(), uint(id))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Logout only clears the cookie; issued tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.NoContent(c)
}
