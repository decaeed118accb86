package benefit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bruno-marques98/CoreCrewApp/internal/benefit"
	benefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/benefit/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	GetAllFn  func(ctx context.Context) ([]benefit.BenefitResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (benefit.BenefitResponse, error)
	CreateFn  func(ctx context.Context, req benefit.BenefitRequest) (benefit.BenefitResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req benefit.BenefitRequest) error
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeService) GetAll(ctx context.Context) ([]benefit.BenefitResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id uint) (benefit.BenefitResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeService) Create(ctx context.Context, req benefit.BenefitRequest) (benefit.BenefitResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, id uint, req benefit.BenefitRequest) error {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc benefit.Service) *gin.Engine {
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := benefit.NewHandler(svc)
	g := r.Group("/api/Benefit")
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

const validBody = `{"name":"Dental","cost":"40.50"}`

func TestBenefitHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			CreateFn: func(ctx context.Context, req benefit.BenefitRequest) (benefit.BenefitResponse, error) {
				return benefit.BenefitResponse{BenefitID: 12, Version: 1}, nil
			},
		}
		w := serve(setupRouter(svc), http.MethodPost, "/api/Benefit", validBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/Benefit/12", w.Header().Get("Location"))
	})

	invalid := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"null", "null"},
		{"missing cost", `{"name":"Dental"}`},
		{"missing name", `{"cost":10}`},
		{"description too long", `{"name":"Dental","cost":1,"description":"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(setupRouter(&fakeService{}), http.MethodPost, "/api/Benefit", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestBenefitHandler_Get(t *testing.T) {
	svc := &fakeService{
		GetAllFn: func(ctx context.Context) ([]benefit.BenefitResponse, error) {
			return []benefit.BenefitResponse{{BenefitID: 1}}, nil
		},
		GetByIDFn: func(ctx context.Context, id uint) (benefit.BenefitResponse, error) {
			if id == 1 {
				return benefit.BenefitResponse{BenefitID: 1}, nil
			}
			return benefit.BenefitResponse{}, benefiterrors.ErrBenefitNotFound
		},
	}
	r := setupRouter(svc)

	w := serve(r, http.MethodGet, "/api/Benefit", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"benefitId":1`)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/Benefit/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/Benefit/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/api/Benefit/abc", "").Code)
}

func TestBenefitHandler_Update(t *testing.T) {
	svc := &fakeService{
		UpdateFn: func(ctx context.Context, id uint, req benefit.BenefitRequest) error {
			if req.Version == 1 {
				return apperror.ErrConcurrentUpdate
			}
			return nil
		},
	}
	r := setupRouter(svc)

	body := strings.Replace(validBody, "{", `{"benefitId":5,`, 1)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPut, "/api/Benefit/5", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/api/Benefit/6", body).Code)

	stale := strings.Replace(validBody, "{", `{"benefitId":5,"version":1,`, 1)
	assert.Equal(t, http.StatusConflict, serve(r, http.MethodPut, "/api/Benefit/5", stale).Code)
}

func TestBenefitHandler_Delete(t *testing.T) {
	svc := &fakeService{
		DeleteFn: func(ctx context.Context, id uint) error {
			if id == 99 {
				return benefiterrors.ErrBenefitNotFound
			}
			return nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/Benefit/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/api/Benefit/99", "").Code)
}
