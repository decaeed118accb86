package salary

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	salaryerrors "github.com/bruno-marques98/CoreCrewApp/internal/salary/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByID(ctx context.Context, id uint) (SalaryResponse, error)
	Create(ctx context.Context, req SalaryRequest) (SalaryResponse, error)
	Update(ctx context.Context, id uint, req SalaryRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list salaries failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (SalaryResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req SalaryRequest) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary requested", zap.String("request_id", rid), zap.Uint("employee_id", req.EmployeeID))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return SalaryResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, salaryerrors.ErrEmployeeMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create salary failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create salary success", zap.String("request_id", rid), zap.Uint("salary_id", row.SalaryID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req SalaryRequest) error {
	if req.SalaryID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update salary requested", zap.String("request_id", rid), zap.Uint("salary_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}
		if req.EmployeeID != current.EmployeeID {
			if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, salaryerrors.ErrEmployeeMissing); err != nil {
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
		s.logger.Warn("update salary failed", zap.String("request_id", rid), zap.Uint("salary_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update salary success", zap.String("request_id", rid), zap.Uint("salary_id", id))
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
			return salaryerrors.ErrSalaryNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete salary failed", zap.String("request_id", rid), zap.Uint("salary_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete salary success", zap.String("request_id", rid), zap.Uint("salary_id", id))
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

func toEntity(id uint, req SalaryRequest, version int64) (*domain.Salary, error) {
	if req.Amount == nil {
		return nil, apperror.RequiredField("amount")
	}
	if req.Amount.IsNegative() {
		return nil, apperror.InvalidField("amount")
	}
	effective, err := request.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, apperror.InvalidField("effectiveDate")
	}
	end, err := request.ParseOptionalDate(req.EndDate)
	if err != nil || (end != nil && end.Before(effective)) {
		return nil, salaryerrors.ErrInvalidPeriod
	}
	return &domain.Salary{
		SalaryID:      id,
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount.Round(2),
		EffectiveDate: effective,
		EndDate:       end,
		Version:       version,
	}, nil
}

func mapToResponse(s domain.Salary) SalaryResponse {
	return SalaryResponse{
		SalaryID:      s.SalaryID,
		EmployeeID:    s.EmployeeID,
		Amount:        s.Amount.StringFixed(2),
		EffectiveDate: request.FormatDate(s.EffectiveDate),
		EndDate:       request.FormatOptionalDate(s.EndDate),
		Version:       s.Version,
		Employee:      summary.FromEmployee(s.Employee),
	}
}

func mapToListResponse(rows []domain.Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
