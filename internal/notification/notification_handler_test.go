package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/notification"
	notificationerrors "github.com/bruno-marques98/CoreCrewApp/internal/notification/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]notification.NotificationResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (notification.NotificationResponse, error)
	CreateFn  func(ctx context.Context, req notification.NotificationRequest) (notification.NotificationResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req notification.NotificationRequest) error
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]notification.NotificationResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id uint) (notification.NotificationResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeService) Create(ctx context.Context, req notification.NotificationRequest) (notification.NotificationResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, id uint, req notification.NotificationRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc notification.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := notification.NewHandler(svc)
	g := r.Group("/api/Notification")
	g.GET("", h.GetAll)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"employeeId":1,"title":"Welcome","message":"Hello"}`

func TestNotificationHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req notification.NotificationRequest) (notification.NotificationResponse, error) {
				return notification.NotificationResponse{NotificationID: 12, Version: 1}, nil
			},
		}
		w := serve(setupRouter(svc), http.MethodPost, "/api/Notification", validBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/Notification/12", w.Header().Get("Location"))
	})

	invalid := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"null", "null"},
		{"missing title", `{"employeeId":1,"message":"Hello"}`},
		{"title too long", `{"employeeId":1,"title":"ttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttttt","message":"m"}`},
		{"missing employee", `{"title":"t","message":"m"}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(setupRouter(&fakeService{}), http.MethodPost, "/api/Notification", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestNotificationHandler_Get(t *testing.T) {
	svc := &fakeService{
		GetAllFn: func(ctx context.Context) ([]notification.NotificationResponse, error) {
			return []notification.NotificationResponse{{NotificationID: 1}}, nil
		},
		GetByIDFn: func(ctx context.Context, id uint) (notification.NotificationResponse, error) {
			if id == 1 {
				return notification.NotificationResponse{NotificationID: 1}, nil
			}
			return notification.NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodGet, "/api/Notification", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notificationId":1`)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/Notification/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/Notification/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/Notification/abc", "").Code)
}

func TestNotificationHandler_Update(t *testing.T) {
	svc := &fakeService{
		UpdateFn: func(ctx context.Context, id uint, req notification.NotificationRequest) error {
			if req.Version == 1 {
				return apperror.ErrConcurrentUpdate
			}
			return nil
		},
	}
	r := setupRouter(svc)

	body := strings.Replace(validBody, "{", `{"notificationId":5,`, 1)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/Notification/5", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/Notification/6", body).Code)

	stale := strings.Replace(validBody, "{", `{"notificationId":5,"version":1,`, 1)
	assert.Equal(t, http.StatusConflict, serve(r, http.MethodPut, "/api/Notification/5", stale).Code)
}

func TestNotificationHandler_Delete(t *testing.T) {
	svc := &fakeService{
		DeleteFn: func(ctx context.Context, id uint) error {
			if id == 99 {
				return notificationerrors.ErrNotificationNotFound
			}
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/Notification/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/api/Notification/99", "").Code)
}
