package employee

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	employeeerrors "github.com/bruno-marques98/CoreCrewApp/internal/employee/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req EmployeeRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.Uint("department_id", req.DepartmentID),
		zap.String("email", req.Email),
	)

	empl, err := toEntity(0, req, 1)
	if err != nil {
		return EmployeeResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureDepartment(ctx, qtx, req.DepartmentID); err != nil {
			return err
		}
		return qtx.Create(ctx, empl)
	})
	if err != nil {
		s.logger.Warn("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.EmployeeID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req EmployeeRequest) error {
	if req.EmployeeID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested", zap.String("request_id", rid), zap.Uint("employee_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}
		if req.DepartmentID != current.DepartmentID {
			if err := ensureDepartment(ctx, qtx, req.DepartmentID); err != nil {
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
		s.logger.Warn("update employee failed", zap.String("request_id", rid), zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Uint("employee_id", id))
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
			return employeeerrors.ErrEmployeeNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee failed", zap.String("request_id", rid), zap.Uint("employee_id", id), zap.Error(err))
		if dberror.IsForeignKeyViolation(err) {
			return employeeerrors.ErrEmployeeInUse
		}
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.Uint("employee_id", id))
	return nil
}

func ensureDepartment(ctx context.Context, repo Repository, departmentID uint) error {
	ok, err := repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return err
	}
	if !ok {
		return employeeerrors.ErrDepartmentMissing
	}
	return nil
}

func toEntity(id uint, req EmployeeRequest, version int64) (*domain.Employee, error) {
	hireDate, err := request.ParseDate(req.HireDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}
	return &domain.Employee{
		EmployeeID:   id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		HireDate:     hireDate,
		DepartmentID: req.DepartmentID,
		Version:      version,
	}, nil
}

func mapToResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		HireDate:     request.FormatDate(e.HireDate),
		DepartmentID: e.DepartmentID,
		Version:      e.Version,
		Department:   summary.FromDepartment(e.Department),
	}
}

func mapToListResponse(empls []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
