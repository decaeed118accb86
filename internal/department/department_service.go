package department

import (
	"context"

	departmenterrors "github.com/bruno-marques98/CoreCrewApp/internal/department/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const listFlightKey = "departments:list"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id uint) (DepartmentResponse, error)
	Create(ctx context.Context, req DepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id uint, req DepartmentRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetAll shares one query between callers that arrive while it is running.
// Nothing is kept once it returns.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	v, err, shared := s.sf.Do(listFlightKey, func() (any, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		s.logger.Error("list departments failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("list departments", zap.Bool("shared", shared))
	return mapToListResponse(v.([]domain.Department)), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, req DepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	dept := &domain.Department{
		Name:    req.Name,
		Version: 1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, dept)
	})
	if err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Uint("department_id", dept.DepartmentID),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id uint, req DepartmentRequest) error {
	if req.DepartmentID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update department requested",
		zap.String("request_id", rid),
		zap.Uint("department_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}

		next := &domain.Department{
			DepartmentID: id,
			Name:         req.Name,
			Version:      current.Version + 1,
		}
		n, err := qtx.Update(ctx, next, current.Version)
		if err != nil {
			return err
		}
		if n == 0 {
			return crud.ResolveNoRows(qtx.Exists(ctx, id))
		}
		return nil
	})
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("update department failed", zap.String("request_id", rid), zap.Error(err))
		} else {
			s.logger.Warn("update department rejected", zap.String("request_id", rid), zap.Error(err))
		}
		return mapped
	}

	s.logger.Info("update department success", zap.String("request_id", rid), zap.Uint("department_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return departmenterrors.ErrDepartmentNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete department failed",
			zap.String("request_id", rid),
			zap.Uint("department_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success", zap.String("request_id", rid), zap.Uint("department_id", id))
	return nil
}

func mapToResponse(dept domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: dept.DepartmentID,
		Name:         dept.Name,
		Version:      dept.Version,
		Employees:    summary.FromEmployeeRefs(dept.Employees),
	}
}

func mapToListResponse(depts []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
