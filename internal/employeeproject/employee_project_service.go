package employeeproject

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	employeeprojecterrors "github.com/bruno-marques98/CoreCrewApp/internal/employeeproject/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_project_service.go -destination=mock/employee_project_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeProjectResponse, error)
	GetByID(ctx context.Context, employeeID, projectID uint) (EmployeeProjectResponse, error)
	Create(ctx context.Context, req EmployeeProjectRequest) (EmployeeProjectResponse, error)
	Update(ctx context.Context, employeeID, projectID uint, req EmployeeProjectRequest) error
	Delete(ctx context.Context, employeeID, projectID uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeeproject.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeproject.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeProjectResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employee projects failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	res := make([]EmployeeProjectResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, employeeID, projectID uint) (EmployeeProjectResponse, error) {
	row, err := s.repo.FindByID(ctx, employeeID, projectID)
	if err != nil {
		return EmployeeProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req EmployeeProjectRequest) (EmployeeProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee project requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("project_id", req.ProjectID),
	)

	row, err := toEntity(req, 1)
	if err != nil {
		return EmployeeProjectResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureParents(ctx, qtx, req.EmployeeID, req.ProjectID); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create employee project failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeProjectResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee project success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", row.EmployeeID),
		zap.Uint("project_id", row.ProjectID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, employeeID, projectID uint, req EmployeeProjectRequest) error {
	if req.EmployeeID != employeeID || req.ProjectID != projectID {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, employeeID, projectID)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}

		next, err := toEntity(req, current.Version+1)
		if err != nil {
			return err
		}
		n, err := qtx.Update(ctx, next, current.Version)
		if err != nil {
			return err
		}
		if n == 0 {
			return crud.ResolveNoRows(qtx.Exists(ctx, employeeID, projectID))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee project failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", employeeID),
			zap.Uint("project_id", projectID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee project success", zap.String("request_id", rid))
	return nil
}

func (s *service) Delete(ctx context.Context, employeeID, projectID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, employeeID, projectID)
		if err != nil {
			return err
		}
		if n == 0 {
			return employeeprojecterrors.ErrEmployeeProjectNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee project failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func ensureParents(ctx context.Context, repo Repository, employeeID, projectID uint) error {
	ok, err := repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeprojecterrors.ErrEmployeeMissing
	}
	ok, err = repo.ProjectExists(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeprojecterrors.ErrProjectMissing
	}
	return nil
}

func toEntity(req EmployeeProjectRequest, version int64) (*domain.EmployeeProject, error) {
	assigned, err := request.ParseDate(req.AssignmentDate)
	if err != nil {
		return nil, employeeprojecterrors.ErrInvalidAssignmentDate
	}
	return &domain.EmployeeProject{
		EmployeeID:     req.EmployeeID,
		ProjectID:      req.ProjectID,
		AssignmentDate: assigned,
		Version:        version,
	}, nil
}

func mapToResponse(row domain.EmployeeProject) EmployeeProjectResponse {
	return EmployeeProjectResponse{
		EmployeeID:     row.EmployeeID,
		ProjectID:      row.ProjectID,
		AssignmentDate: request.FormatDate(row.AssignmentDate),
		Version:        row.Version,
		Employee:       summary.FromEmployee(row.Employee),
		Project:        summary.FromProject(row.Project),
	}
}
