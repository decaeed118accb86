package project

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	projecterrors "github.com/bruno-marques98/CoreCrewApp/internal/project/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id uint) (ProjectResponse, error)
	Create(ctx context.Context, req ProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, id uint, req ProjectRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list projects failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (ProjectResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req ProjectRequest) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested", zap.String("request_id", rid), zap.String("name", req.Name), zap.Uint("manager_id", req.ManagerID))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return ProjectResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.ManagerExists, req.ManagerID, projecterrors.ErrManagerMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create project failed", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create project success", zap.String("request_id", rid), zap.Uint("project_id", row.ProjectID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req ProjectRequest) error {
	if req.ProjectID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update project requested", zap.String("request_id", rid), zap.Uint("project_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}
		if req.ManagerID != current.ManagerID {
			if err := ensureExists(ctx, qtx.ManagerExists, req.ManagerID, projecterrors.ErrManagerMissing); err != nil {
				return err
			}
		}

		next, err := toEntity(id, req, current.Version+1)
		if err != nil {
			return err
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
		s.logger.Warn("update project failed", zap.String("request_id", rid), zap.Uint("project_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update project success", zap.String("request_id", rid), zap.Uint("project_id", id))
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
			return projecterrors.ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete project failed", zap.String("request_id", rid), zap.Uint("project_id", id), zap.Error(err))
		if dberror.IsForeignKeyViolation(err) {
			return projecterrors.ErrProjectInUse
		}
		return mapRepositoryError(err)
	}

	s.logger.Info("delete project success", zap.String("request_id", rid), zap.Uint("project_id", id))
	return nil
}

func ensureExists(ctx context.Context, exists func(context.Context, uint) (bool, error), id uint, missing error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return missing
	}
	return nil
}

func toEntity(id uint, req ProjectRequest, version int64) (*domain.Project, error) {
	start, err := request.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperror.InvalidField("startDate")
	}
	end, err := request.ParseOptionalDate(req.EndDate)
	if err != nil || (end != nil && end.Before(start)) {
		return nil, projecterrors.ErrInvalidPeriod
	}
	return &domain.Project{
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		ManagerID:   req.ManagerID,
		Version:     version,
	}, nil
}

func mapToResponse(p domain.Project) ProjectResponse {
	assignments := make([]ProjectAssignment, len(p.EmployeeProjects))
	for i, ep := range p.EmployeeProjects {
		assignments[i] = ProjectAssignment{
			EmployeeID:     ep.EmployeeID,
			ProjectID:      ep.ProjectID,
			AssignmentDate: request.FormatDate(ep.AssignmentDate),
			Employee:       summary.FromEmployee(ep.Employee),
		}
	}
	return ProjectResponse{
		ProjectID:        p.ProjectID,
		Name:             p.Name,
		Description:      p.Description,
		StartDate:        request.FormatDate(p.StartDate),
		EndDate:          request.FormatOptionalDate(p.EndDate),
		ManagerID:        p.ManagerID,
		Version:          p.Version,
		Manager:          summary.FromEmployee(p.Manager),
		EmployeeProjects: assignments,
	}
}

func mapToListResponse(rows []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
