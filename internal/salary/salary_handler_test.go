package salary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/salary"
	salaryerrors "github.com/bruno-marques98/CoreCrewApp/internal/salary/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]salary.SalaryResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (salary.SalaryResponse, error)
	CreateFn  func(ctx context.Context, req salary.SalaryRequest) (salary.SalaryResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req salary.SalaryRequest) error
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]salary.SalaryResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id uint) (salary.SalaryResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeService) Create(ctx context.Context, req salary.SalaryRequest) (salary.SalaryResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, id uint, req salary.SalaryRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc salary.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := salary.NewHandler(svc)
	g := r.Group("/api/Salary")
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

const validBody = `{"employeeId":1,"amount":"5200.00","effectiveDate":"2024-01-01"}`

func TestSalaryHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req salary.SalaryRequest) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{SalaryID: 12, Version: 1}, nil
			},
		}
		w := serve(setupRouter(svc), http.MethodPost, "/api/Salary", validBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/Salary/12", w.Header().Get("Location"))
	})

	invalid := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"null", "null"},
		{"missing amount", `{"employeeId":1,"effectiveDate":"2024-01-01"}`},
		{"amount not a number", `{"employeeId":1,"amount":"lots","effectiveDate":"2024-01-01"}`},
		{"bad end date", `{"employeeId":1,"amount":1,"effectiveDate":"2024-01-01","endDate":"soon"}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(setupRouter(&fakeService{}), http.MethodPost, "/api/Salary", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSalaryHandler_Get(t *testing.T) {
	svc := &fakeService{
		GetAllFn: func(ctx context.Context) ([]salary.SalaryResponse, error) {
			return []salary.SalaryResponse{{SalaryID: 1}}, nil
		},
		GetByIDFn: func(ctx context.Context, id uint) (salary.SalaryResponse, error) {
			if id == 1 {
				return salary.SalaryResponse{SalaryID: 1}, nil
			}
			return salary.SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodGet, "/api/Salary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"salaryId":1`)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/Salary/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/Salary/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/Salary/abc", "").Code)
}

func TestSalaryHandler_Update(t *testing.T) {
	svc := &fakeService{
		UpdateFn: func(ctx context.Context, id uint, req salary.SalaryRequest) error {
			if req.Version == 1 {
				return apperror.ErrConcurrentUpdate
			}
			return nil
		},
	}
	r := setupRouter(svc)

	body := strings.Replace(validBody, "{", `{"salaryId":5,`, 1)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/Salary/5", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/Salary/6", body).Code)

	stale := strings.Replace(validBody, "{", `{"salaryId":5,"version":1,`, 1)
	assert.Equal(t, http.StatusConflict, serve(r, http.MethodPut, "/api/Salary/5", stale).Code)
}

func TestSalaryHandler_Delete(t *testing.T) {
	svc := &fakeService{
		DeleteFn: func(ctx context.Context, id uint) error {
			if id == 99 {
				return salaryerrors.ErrSalaryNotFound
			}
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/Salary/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/api/Salary/99", "").Code)
}
