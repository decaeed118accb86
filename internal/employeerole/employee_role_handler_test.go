package employeerole_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/employeerole"
	employeeroleerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeerole/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]employeerole.EmployeeRoleResponse, error)
	GetByIDFn func(ctx context.Context, employeeID, roleID uint) (employeerole.EmployeeRoleResponse, error)
	CreateFn  func(ctx context.Context, req employeerole.EmployeeRoleRequest) (employeerole.EmployeeRoleResponse, error)
	UpdateFn  func(ctx context.Context, employeeID, roleID uint, req employeerole.EmployeeRoleRequest) error
	DeleteFn  func(ctx context.Context, employeeID, roleID uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]employeerole.EmployeeRoleResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, employeeID, roleID uint) (employeerole.EmployeeRoleResponse, error) {
	return f.GetByIDFn(ctx, employeeID, roleID)
}
func (f *fakeService) Create(ctx context.Context, req employeerole.EmployeeRoleRequest) (employeerole.EmployeeRoleResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, employeeID, roleID uint, req employeerole.EmployeeRoleRequest) error {
	return f.UpdateFn(ctx, employeeID, roleID, req)
}
func (f *fakeService) Delete(ctx context.Context, employeeID, roleID uint) error {
	return f.DeleteFn(ctx, employeeID, roleID)
}

func setupRouter(svc employeerole.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employeerole.NewHandler(svc)
	g := r.Group("/api/EmployeeRole")
	g.GET("", h.GetAll)
	g.GET("/:employeeId/:roleId", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:employeeId/:roleId", h.Update)
	g.DELETE("/:employeeId/:roleId", h.Delete)
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

func TestEmployeeRoleHandler_Create(t *testing.T) {
	svc := &fakeService{
		CreateFn: func(ctx context.Context, req employeerole.EmployeeRoleRequest) (employeerole.EmployeeRoleResponse, error) {
			if req.RoleID == 9 {
				return employeerole.EmployeeRoleResponse{}, employeeroleerrors.ErrRoleMissing
			}
			return employeerole.EmployeeRoleResponse{EmployeeID: req.EmployeeID, RoleID: req.RoleID, AssignDate: req.AssignDate, Version: 1}, nil
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodPost, "/api/EmployeeRole", `{"employeeId":1,"roleId":2,"assignDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/EmployeeRole/1/2", w.Header().Get("Location"))

	w = serve(r, http.MethodPost, "/api/EmployeeRole", `{"employeeId":1,"roleId":9,"assignDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(r, http.MethodPost, "/api/EmployeeRole", `{"employeeId":1,"assignDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeRoleHandler_KeyedRoutes(t *testing.T) {
	svc := &fakeService{
		GetByIDFn: func(ctx context.Context, employeeID, roleID uint) (employeerole.EmployeeRoleResponse, error) {
			return employeerole.EmployeeRoleResponse{}, employeeroleerrors.ErrEmployeeRoleNotFound
		},
		UpdateFn: func(ctx context.Context, employeeID, roleID uint, req employeerole.EmployeeRoleRequest) error {
			return nil
		},
		DeleteFn: func(ctx context.Context, employeeID, roleID uint) error {
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/EmployeeRole/1/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/EmployeeRole/1/x", "").Code)

	body := `{"employeeId":1,"roleId":2,"assignDate":"2024-01-01"}`
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/EmployeeRole/1/2", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/EmployeeRole/1/3", body).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/EmployeeRole/1/2", "").Code)
}
