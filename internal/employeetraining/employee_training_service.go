package employeetraining

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	employeetrainingerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeetraining/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_training_service.go -destination=mock/employee_training_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeTrainingResponse, error)
	GetByID(ctx context.Context, employeeID, trainingProgramID uint) (EmployeeTrainingResponse, error)
	Create(ctx context.Context, req EmployeeTrainingRequest) (EmployeeTrainingResponse, error)
	Update(ctx context.Context, employeeID, trainingProgramID uint, req EmployeeTrainingRequest) error
	Delete(ctx context.Context, employeeID, trainingProgramID uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeetraining.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeetraining.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeTrainingResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employee trainings failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	res := make([]EmployeeTrainingResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, employeeID, trainingProgramID uint) (EmployeeTrainingResponse, error) {
	row, err := s.repo.FindByID(ctx, employeeID, trainingProgramID)
	if err != nil {
		return EmployeeTrainingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req EmployeeTrainingRequest) (EmployeeTrainingResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee training requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Uint("training_program_id", req.TrainingProgramID),
	)

	row, err := toEntity(req, 1)
	if err != nil {
		return EmployeeTrainingResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureParents(ctx, qtx, req.EmployeeID, req.TrainingProgramID); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create employee training failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeTrainingResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee training success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", row.EmployeeID),
		zap.Uint("training_program_id", row.TrainingProgramID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, employeeID, trainingProgramID uint, req EmployeeTrainingRequest) error {
	if req.EmployeeID != employeeID || req.TrainingProgramID != trainingProgramID {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, employeeID, trainingProgramID)
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
			return crud.ResolveNoRows(qtx.Exists(ctx, employeeID, trainingProgramID))
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee training failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", employeeID),
			zap.Uint("training_program_id", trainingProgramID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee training success", zap.String("request_id", rid))
	return nil
}

func (s *service) Delete(ctx context.Context, employeeID, trainingProgramID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, employeeID, trainingProgramID)
		if err != nil {
			return err
		}
		if n == 0 {
			return employeetrainingerrors.ErrEmployeeTrainingNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee training failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func ensureParents(ctx context.Context, repo Repository, employeeID, trainingProgramID uint) error {
	ok, err := repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employeetrainingerrors.ErrEmployeeMissing
	}
	ok, err = repo.TrainingProgramExists(ctx, trainingProgramID)
	if err != nil {
		return err
	}
	if !ok {
		return employeetrainingerrors.ErrTrainingProgramMissing
	}
	return nil
}

func toEntity(req EmployeeTrainingRequest, version int64) (*domain.EmployeeTraining, error) {
	enrolled, err := request.ParseDate(req.EnrollmentDate)
	if err != nil {
		return nil, employeetrainingerrors.ErrInvalidEnrollmentDate
	}
	completed, err := request.ParseOptionalDate(req.CompletionDate)
	if err != nil || (completed != nil && completed.Before(enrolled)) {
		return nil, employeetrainingerrors.ErrInvalidCompletionDate
	}
	return &domain.EmployeeTraining{
		EmployeeID:        req.EmployeeID,
		TrainingProgramID: req.TrainingProgramID,
		EnrollmentDate:    enrolled,
		CompletionDate:    completed,
		Version:           version,
	}, nil
}

func mapToResponse(row domain.EmployeeTraining) EmployeeTrainingResponse {
	return EmployeeTrainingResponse{
		EmployeeID:        row.EmployeeID,
		TrainingProgramID: row.TrainingProgramID,
		EnrollmentDate:    request.FormatDate(row.EnrollmentDate),
		CompletionDate:    request.FormatOptionalDate(row.CompletionDate),
		Version:           row.Version,
		Employee:          summary.FromEmployee(row.Employee),
		TrainingProgram:   summary.FromTrainingProgram(row.TrainingProgram),
	}
}
