package employeetraining_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/employeetraining"
	employeetrainingerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeetraining/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]employeetraining.EmployeeTrainingResponse, error)
	GetByIDFn func(ctx context.Context, employeeID, trainingProgramID uint) (employeetraining.EmployeeTrainingResponse, error)
	CreateFn  func(ctx context.Context, req employeetraining.EmployeeTrainingRequest) (employeetraining.EmployeeTrainingResponse, error)
	UpdateFn  func(ctx context.Context, employeeID, trainingProgramID uint, req employeetraining.EmployeeTrainingRequest) error
	DeleteFn  func(ctx context.Context, employeeID, trainingProgramID uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]employeetraining.EmployeeTrainingResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, employeeID, trainingProgramID uint) (employeetraining.EmployeeTrainingResponse, error) {
	return f.GetByIDFn(ctx, employeeID, trainingProgramID)
}
func (f *fakeService) Create(ctx context.Context, req employeetraining.EmployeeTrainingRequest) (employeetraining.EmployeeTrainingResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, employeeID, trainingProgramID uint, req employeetraining.EmployeeTrainingRequest) error {
	return f.UpdateFn(ctx, employeeID, trainingProgramID, req)
}
func (f *fakeService) Delete(ctx context.Context, employeeID, trainingProgramID uint) error {
	return f.DeleteFn(ctx, employeeID, trainingProgramID)
}

func setupRouter(svc employeetraining.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employeetraining.NewHandler(svc)
	g := r.Group("/api/EmployeeTraining")
	g.GET("", h.GetAll)
	g.GET("/:employeeId/:trainingProgramId", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:employeeId/:trainingProgramId", h.Update)
	g.DELETE("/:employeeId/:trainingProgramId", h.Delete)
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

func TestEmployeeTrainingHandler_Create(t *testing.T) {
	svc := &fakeService{
		CreateFn: func(ctx context.Context, req employeetraining.EmployeeTrainingRequest) (employeetraining.EmployeeTrainingResponse, error) {
			if req.TrainingProgramID == 9 {
				return employeetraining.EmployeeTrainingResponse{}, employeetrainingerrors.ErrTrainingProgramMissing
			}
			return employeetraining.EmployeeTrainingResponse{EmployeeID: req.EmployeeID, TrainingProgramID: req.TrainingProgramID, EnrollmentDate: req.EnrollmentDate, Version: 1}, nil
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodPost, "/api/EmployeeTraining", `{"employeeId":1,"trainingProgramId":2,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/EmployeeTraining/1/2", w.Header().Get("Location"))

	w = serve(r, http.MethodPost, "/api/EmployeeTraining", `{"employeeId":1,"trainingProgramId":9,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(r, http.MethodPost, "/api/EmployeeTraining", `{"employeeId":1,"enrollmentDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeTrainingHandler_KeyedRoutes(t *testing.T) {
	svc := &fakeService{
		GetByIDFn: func(ctx context.Context, employeeID, trainingProgramID uint) (employeetraining.EmployeeTrainingResponse, error) {
			return employeetraining.EmployeeTrainingResponse{}, employeetrainingerrors.ErrEmployeeTrainingNotFound
		},
		UpdateFn: func(ctx context.Context, employeeID, trainingProgramID uint, req employeetraining.EmployeeTrainingRequest) error {
			return nil
		},
		DeleteFn: func(ctx context.Context, employeeID, trainingProgramID uint) error {
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/EmployeeTraining/1/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/EmployeeTraining/1/x", "").Code)

	body := `{"employeeId":1,"trainingProgramId":2,"enrollmentDate":"2024-01-01"}`
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/EmployeeTraining/1/2", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/EmployeeTraining/1/3", body).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/EmployeeTraining/1/2", "").Code)
}
