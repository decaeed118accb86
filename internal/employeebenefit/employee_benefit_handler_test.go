package employeebenefit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit"
	employeebenefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]employeebenefit.EmployeeBenefitResponse, error)
	GetByIDFn func(ctx context.Context, employeeID, benefitID uint) (employeebenefit.EmployeeBenefitResponse, error)
	CreateFn  func(ctx context.Context, req employeebenefit.EmployeeBenefitRequest) (employeebenefit.EmployeeBenefitResponse, error)
	UpdateFn  func(ctx context.Context, employeeID, benefitID uint, req employeebenefit.EmployeeBenefitRequest) error
	DeleteFn  func(ctx context.Context, employeeID, benefitID uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]employeebenefit.EmployeeBenefitResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, employeeID, benefitID uint) (employeebenefit.EmployeeBenefitResponse, error) {
	return f.GetByIDFn(ctx, employeeID, benefitID)
}
func (f *fakeService) Create(ctx context.Context, req employeebenefit.EmployeeBenefitRequest) (employeebenefit.EmployeeBenefitResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, employeeID, benefitID uint, req employeebenefit.EmployeeBenefitRequest) error {
	return f.UpdateFn(ctx, employeeID, benefitID, req)
}
func (f *fakeService) Delete(ctx context.Context, employeeID, benefitID uint) error {
	return f.DeleteFn(ctx, employeeID, benefitID)
}

func setupRouter(svc employeebenefit.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employeebenefit.NewHandler(svc)
	g := r.Group("/api/EmployeeBenefit")
	g.GET("", h.GetAll)
	g.GET("/:employeeId/:benefitId", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:employeeId/:benefitId", h.Update)
	g.DELETE("/:employeeId/:benefitId", h.Delete)
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

func TestEmployeeBenefitHandler_Create(t *testing.T) {
	svc := &fakeService{
		CreateFn: func(ctx context.Context, req employeebenefit.EmployeeBenefitRequest) (employeebenefit.EmployeeBenefitResponse, error) {
			if req.BenefitID == 9 {
				return employeebenefit.EmployeeBenefitResponse{}, employeebenefiterrors.ErrBenefitMissing
			}
			return employeebenefit.EmployeeBenefitResponse{EmployeeID: req.EmployeeID, BenefitID: req.BenefitID, EnrollmentDate: req.EnrollmentDate, Version: 1}, nil
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodPost, "/api/EmployeeBenefit", `{"employeeId":1,"benefitId":2,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/EmployeeBenefit/1/2", w.Header().Get("Location"))

	w = serve(r, http.MethodPost, "/api/EmployeeBenefit", `{"employeeId":1,"benefitId":9,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(r, http.MethodPost, "/api/EmployeeBenefit", `{"employeeId":1,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeBenefitHandler_KeyedRoutes(t *testing.T) {
	svc := &fakeService{
		GetByIDFn: func(ctx context.Context, employeeID, benefitID uint) (employeebenefit.EmployeeBenefitResponse, error) {
			return employeebenefit.EmployeeBenefitResponse{}, employeebenefiterrors.ErrEmployeeBenefitNotFound
		},
		UpdateFn: func(ctx context.Context, employeeID, benefitID uint, req employeebenefit.EmployeeBenefitRequest) error {
			return nil
		},
		DeleteFn: func(ctx context.Context, employeeID, benefitID uint) error {
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/EmployeeBenefit/1/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/EmployeeBenefit/1/x", "").Code)

	body := `{"employeeId":1,"benefitId":2,"enrollmentDate":"2024-01-01"}`
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/EmployeeBenefit/1/2", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/EmployeeBenefit/1/3", body).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/EmployeeBenefit/1/2", "").Code)
}
