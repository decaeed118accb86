package employeerole

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	employeeroleerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeerole/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_role_service.go -destination=mock/employee_role_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeRoleResponse, error)
	GetByID(ctx context.Context, employeeID, roleID uint) (EmployeeRoleResponse, error)
	Create(ctx context.Context, req EmployeeRoleRequest) (EmployeeRoleResponse, error)
	Update(ctx context.Context, employeeID, roleID uint, req EmployeeRoleRequest) error
	Delete(ctx context.Context, employeeID, roleID uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeerole.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeerole.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeRoleResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employee roles failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	res := make([]EmployeeRoleResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, employeeID, roleID uint) (EmployeeRoleResponse, error) {
	row, err := s.repo.FindByID(ctx, employeeID, roleID)
	if err != nil {
		return EmployeeRoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req EmployeeRoleRequest) (EmployeeRoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee role requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("role_id", req.RoleID),
	)

	row, err := toEntity(req, 1)
	if err != nil {
		return EmployeeRoleResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureParents(ctx, qtx, req.EmployeeID, req.RoleID); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create employee role failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeRoleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee role success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", row.EmployeeID),
		zap.Uint("role_id", row.RoleID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, employeeID, roleID uint, req EmployeeRoleRequest) error {
	if req.EmployeeID != employeeID || req.RoleID != roleID {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, employeeID, roleID)
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
			return crud.ResolveNoRows(qtx.Exists(ctx, employeeID, roleID))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee role failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", employeeID),
			zap.Uint("role_id", roleID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee role success", zap.String("request_id", rid))
	return nil
}

func (s *service) Delete(ctx context.Context, employeeID, roleID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, employeeID, roleID)
		if err != nil {
			return err
		}
		if n == 0 {
			return employeeroleerrors.ErrEmployeeRoleNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee role failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func ensureParents(ctx context.Context, repo Repository, employeeID, roleID uint) error {
	ok, err := repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeroleerrors.ErrEmployeeMissing
	}
	ok, err = repo.RoleExists(ctx, roleID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeroleerrors.ErrRoleMissing
	}
	return nil
}

func toEntity(req EmployeeRoleRequest, version int64) (*domain.EmployeeRole, error) {
	assigned, err := request.ParseDate(req.AssignDate)
	if err != nil {
		return nil, employeeroleerrors.ErrInvalidAssignDate
	}
	return &domain.EmployeeRole{
		EmployeeID: req.EmployeeID,
		RoleID:     req.RoleID,
		AssignDate: assigned,
		Version:    version,
	}, nil
}

func mapToResponse(er domain.EmployeeRole) EmployeeRoleResponse {
	return EmployeeRoleResponse{
		EmployeeID: er.EmployeeID,
		RoleID:     er.RoleID,
		AssignDate: request.FormatDate(er.AssignDate),
		Version:    er.Version,
		Employee:   summary.FromEmployee(er.Employee),
		Role:       summary.FromRole(er.Role),
	}
}
