package role

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	roleerrors "github.com/bruno-marques98/CoreCrewApp/internal/role/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const listFlightKey = "roles:list"

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id uint) (RoleResponse, error)
	Create(ctx context.Context, req RoleRequest) (RoleResponse, error)
	Update(ctx context.Context, id uint, req RoleRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
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
func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	v, err, shared := s.sf.Do(listFlightKey, func() (any, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		s.logger.Error("list roles failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("list roles", zap.Bool("shared", shared))
	return mapToListResponse(v.([]domain.Role)), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*role), nil
}

func (s *service) Create(ctx context.Context, req RoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create role requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	role := &domain.Role{
		Name:    req.Name,
		Version: 1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, role)
	})
	if err != nil {
		s.logger.Error("create role persist failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create role success",
		zap.String("request_id", rid),
		zap.Uint("role_id", role.RoleID),
	)
	return mapToResponse(*role), nil
}

func (s *service) Update(ctx context.Context, id uint, req RoleRequest) error {
	if req.RoleID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update role requested",
		zap.String("request_id", rid),
		zap.Uint("role_id", id),
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

		next := &domain.Role{
			RoleID:  id,
			Name:    req.Name,
			Version: current.Version + 1,
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
			s.logger.Error("update role failed", zap.String("request_id", rid), zap.Error(err))
		} else {
			s.logger.Warn("update role rejected", zap.String("request_id", rid), zap.Error(err))
		}
		return mapped
	}

	s.logger.Info("update role success", zap.String("request_id", rid), zap.Uint("role_id", id))
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
			return roleerrors.ErrRoleNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete role failed",
			zap.String("request_id", rid),
			zap.Uint("role_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete role success", zap.String("request_id", rid), zap.Uint("role_id", id))
	return nil
}

func mapToResponse(r domain.Role) RoleResponse {
	assignments := make([]RoleAssignment, len(r.EmployeeRoles))
	for i, er := range r.EmployeeRoles {
		assignments[i] = RoleAssignment{
			EmployeeID: er.EmployeeID,
			RoleID:     er.RoleID,
			AssignDate: request.FormatDate(er.AssignDate),
			Employee:   summary.FromEmployee(er.Employee),
		}
	}
	return RoleResponse{
		RoleID:        r.RoleID,
		Name:          r.Name,
		Version:       r.Version,
		EmployeeRoles: assignments,
	}
}

func mapToListResponse(roles []domain.Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}
