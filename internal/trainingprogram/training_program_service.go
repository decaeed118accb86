package trainingprogram

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"
	trainingprogramerrors "github.com/bruno-marques98/CoreCrewApp/internal/trainingprogram/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=training_program_service.go -destination=mock/training_program_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]TrainingProgramResponse, error)
	GetByID(ctx context.Context, id uint) (TrainingProgramResponse, error)
	Create(ctx context.Context, req TrainingProgramRequest) (TrainingProgramResponse, error)
	Update(ctx context.Context, id uint, req TrainingProgramRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("trainingprogram.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingprogram.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]TrainingProgramResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list training programs failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (TrainingProgramResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TrainingProgramResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req TrainingProgramRequest) (TrainingProgramResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create training program requested", zap.String("request_id", rid), zap.String("name", req.Name), zap.Uint("trainer_id", req.TrainerID))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return TrainingProgramResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.TrainerExists, req.TrainerID, trainingprogramerrors.ErrTrainerMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create training program failed", zap.String("request_id", rid), zap.Error(err))
		return TrainingProgramResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create training program success", zap.String("request_id", rid), zap.Uint("training_program_id", row.TrainingProgramID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req TrainingProgramRequest) error {
	if req.TrainingProgramID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update training program requested", zap.String("request_id", rid), zap.Uint("training_program_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
		}
		if req.TrainerID != current.TrainerID {
			if err := ensureExists(ctx, qtx.TrainerExists, req.TrainerID, trainingprogramerrors.ErrTrainerMissing); err != nil {
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
		s.logger.Warn("update training program failed", zap.String("request_id", rid), zap.Uint("training_program_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update training program success", zap.String("request_id", rid), zap.Uint("training_program_id", id))
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
			return trainingprogramerrors.ErrTrainingProgramNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete training program failed", zap.String("request_id", rid), zap.Uint("training_program_id", id), zap.Error(err))
		if dberror.IsForeignKeyViolation(err) {
			return trainingprogramerrors.ErrTrainingProgramInUse
		}
		return mapRepositoryError(err)
	}

	s.logger.Info("delete training program success", zap.String("request_id", rid), zap.Uint("training_program_id", id))
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

func toEntity(id uint, req TrainingProgramRequest, version int64) (*domain.TrainingProgram, error) {
	start, err := request.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperror.InvalidField("startDate")
	}
	end, err := request.ParseOptionalDate(req.EndDate)
	if err != nil || (end != nil && end.Before(start)) {
		return nil, trainingprogramerrors.ErrInvalidPeriod
	}
	return &domain.TrainingProgram{
		TrainingProgramID: id,
		Name:              req.Name,
		Description:       req.Description,
		StartDate:         start,
		EndDate:           end,
		TrainerID:         req.TrainerID,
		Version:           version,
	}, nil
}

func mapToResponse(tp domain.TrainingProgram) TrainingProgramResponse {
	return TrainingProgramResponse{
		TrainingProgramID: tp.TrainingProgramID,
		Name:              tp.Name,
		Description:       tp.Description,
		StartDate:         request.FormatDate(tp.StartDate),
		EndDate:           request.FormatOptionalDate(tp.EndDate),
		TrainerID:         tp.TrainerID,
		Version:           tp.Version,
		Trainer:           summary.FromEmployee(tp.Trainer),
	}
}

func mapToListResponse(rows []domain.TrainingProgram) []TrainingProgramResponse {
	res := make([]TrainingProgramResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
