package employeebenefit

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	employeebenefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_benefit_service.go -destination=mock/employee_benefit_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeBenefitResponse, error)
	GetByID(ctx context.Context, employeeID, benefitID uint) (EmployeeBenefitResponse, error)
	Create(ctx context.Context, req EmployeeBenefitRequest) (EmployeeBenefitResponse, error)
	Update(ctx context.Context, employeeID, benefitID uint, req EmployeeBenefitRequest) error
	Delete(ctx context.Context, employeeID, benefitID uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeebenefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeebenefit.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeBenefitResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employee benefits failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	res := make([]EmployeeBenefitResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, employeeID, benefitID uint) (EmployeeBenefitResponse, error) {
	row, err := s.repo.FindByID(ctx, employeeID, benefitID)
	if err != nil {
		return EmployeeBenefitResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req EmployeeBenefitRequest) (EmployeeBenefitResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee benefit requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("benefit_id", req.BenefitID),
	)

	row, err := toEntity(req, 1)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureParents(ctx, qtx, req.EmployeeID, req.BenefitID); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create employee benefit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeBenefitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee benefit success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", row.EmployeeID),
		zap.Uint("benefit_id", row.BenefitID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, employeeID, benefitID uint, req EmployeeBenefitRequest) error {
	if req.EmployeeID != employeeID || req.BenefitID != benefitID {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, employeeID, benefitID)
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
			return crud.ResolveNoRows(qtx.Exists(ctx, employeeID, benefitID))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee benefit failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", employeeID),
			zap.Uint("benefit_id", benefitID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee benefit success", zap.String("request_id", rid))
	return nil
}

func (s *service) Delete(ctx context.Context, employeeID, benefitID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, employeeID, benefitID)
		if err != nil {
			return err
		}
		if n == 0 {
			return employeebenefiterrors.ErrEmployeeBenefitNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee benefit failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func ensureParents(ctx context.Context, repo Repository, employeeID, benefitID uint) error {
	ok, err := repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employeebenefiterrors.ErrEmployeeMissing
	}
	ok, err = repo.BenefitExists(ctx, benefitID)
	if err != nil {
		return err
	}
	if !ok {
		return employeebenefiterrors.ErrBenefitMissing
	}
	return nil
}

func toEntity(req EmployeeBenefitRequest, version int64) (*domain.EmployeeBenefit, error) {
	enrolled, err := request.ParseDate(req.EnrollmentDate)
	if err != nil {
		return nil, employeebenefiterrors.ErrInvalidEnrollmentDate
	}
	return &domain.EmployeeBenefit{
		EmployeeID:     req.EmployeeID,
		BenefitID:      req.BenefitID,
		EnrollmentDate: enrolled,
		Version:        version,
	}, nil
}

func mapToResponse(row domain.EmployeeBenefit) EmployeeBenefitResponse {
	return EmployeeBenefitResponse{
		EmployeeID:     row.EmployeeID,
		BenefitID:      row.BenefitID,
		EnrollmentDate: request.FormatDate(row.EnrollmentDate),
		Version:        row.Version,
		Employee:       summary.FromEmployee(row.Employee),
		Benefit:        summary.FromBenefit(row.Benefit),
	}
}
