package benefit

import (
	"context"

	benefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/benefit/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_service.go -destination=mock/benefit_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]BenefitResponse, error)
	GetByID(ctx context.Context, id uint) (BenefitResponse, error)
	Create(ctx context.Context, req BenefitRequest) (BenefitResponse, error)
	Update(ctx context.Context, id uint, req BenefitRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]BenefitResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list benefits failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (BenefitResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BenefitResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req BenefitRequest) (BenefitResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create benefit requested", zap.String("request_id", rid), zap.String("name", req.Name))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return BenefitResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create benefit failed", zap.String("request_id", rid), zap.Error(err))
		return BenefitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create benefit success", zap.String("request_id", rid), zap.Uint("benefit_id", row.BenefitID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req BenefitRequest) error {
	if req.BenefitID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update benefit requested", zap.String("request_id", rid), zap.Uint("benefit_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crud.CheckVersion(req.Version, current.Version); err != nil {
			return err
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
		s.logger.Warn("update benefit failed", zap.String("request_id", rid), zap.Uint("benefit_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update benefit success", zap.String("request_id", rid), zap.Uint("benefit_id", id))
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
			return benefiterrors.ErrBenefitNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete benefit failed", zap.String("request_id", rid), zap.Uint("benefit_id", id), zap.Error(err))
		if dberror.IsForeignKeyViolation(err) {
			return benefiterrors.ErrBenefitInUse
		}
		return mapRepositoryError(err)
	}

	s.logger.Info("delete benefit success", zap.String("request_id", rid), zap.Uint("benefit_id", id))
	return nil
}

func toEntity(id uint, req BenefitRequest, version int64) (*domain.Benefit, error) {
	if req.Cost == nil {
		return nil, apperror.RequiredField("cost")
	}
	if req.Cost.IsNegative() {
		return nil, apperror.InvalidField("cost")
	}
	return &domain.Benefit{
		BenefitID:   id,
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost.Round(2),
		Version:     version,
	}, nil
}

func mapToResponse(b domain.Benefit) BenefitResponse {
	return BenefitResponse{
		BenefitID:   b.BenefitID,
		Name:        b.Name,
		Description: b.Description,
		Cost:        b.Cost.StringFixed(2),
		Version:     b.Version,
	}
}

func mapToListResponse(rows []domain.Benefit) []BenefitResponse {
	res := make([]BenefitResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
