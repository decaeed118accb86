package department_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/department"
	departmenterrors "github.com/bruno-marques98/CoreCrewApp/internal/department/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentService struct {
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (department.DepartmentResponse, error)
	CreateFn  func(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req department.DepartmentRequest) error
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id uint) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Create(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id uint, req department.DepartmentRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc department.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := department.NewHandler(svc)
	g := r.Group("/api/Department")
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

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{DepartmentID: 3, Name: req.Name, Version: 1}, nil
			},
		}

		w := serve(setupRouter(svc), http.MethodPost, "/api/Department", `{"name":"Finance"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/Department/3", w.Header().Get("Location"))

		var env struct {
			Ok   bool                          `json:"ok"`
			Data department.DepartmentResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "Finance", env.Data.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		w := serve(setupRouter(&fakeDepartmentService{}), http.MethodPost, "/api/Department", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("null body", func(t *testing.T) {
		w := serve(setupRouter(&fakeDepartmentService{}), http.MethodPost, "/api/Department", "null")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("name too long", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 101) + `"}`
		w := serve(setupRouter(&fakeDepartmentService{}), http.MethodPost, "/api/Department", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id uint) (department.DepartmentResponse, error) {
			if id == 1 {
				return department.DepartmentResponse{DepartmentID: 1, Name: "HR"}, nil
			}
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/Department/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/Department/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/Department/abc", "").Code)
}

func TestDepartmentHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			UpdateFn: func(ctx context.Context, id uint, req department.DepartmentRequest) error {
				assert.Equal(t, uint(5), id)
				return nil
			},
		}
		w := serve(setupRouter(svc), http.MethodPut, "/api/Department/5", `{"departmentId":5,"name":"Ops"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("id mismatch never reaches the service", func(t *testing.T) {
		w := serve(setupRouter(&fakeDepartmentService{}), http.MethodPut, "/api/Department/5", `{"departmentId":6,"name":"Ops"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeDepartmentService{
			UpdateFn: func(ctx context.Context, id uint, req department.DepartmentRequest) error {
				return apperror.ErrConcurrentUpdate
			},
		}
		w := serve(setupRouter(svc), http.MethodPut, "/api/Department/5", `{"departmentId":5,"name":"Ops","version":1}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id uint) error {
			if id == 99 {
				return departmenterrors.ErrDepartmentNotFound
			}
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/Department/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/api/Department/99", "").Code)
}
