package performancereview

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	performancereviewerrors "github.com/bruno-marques98/CoreCrewApp/internal/performancereview/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=performance_review_service.go -destination=mock/performance_review_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]PerformanceReviewResponse, error)
	GetByID(ctx context.Context, id uint) (PerformanceReviewResponse, error)
	Create(ctx context.Context, req PerformanceReviewRequest) (PerformanceReviewResponse, error)
	Update(ctx context.Context, id uint, req PerformanceReviewRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performancereview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performancereview.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]PerformanceReviewResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list performance reviews failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (PerformanceReviewResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PerformanceReviewResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req PerformanceReviewRequest) (PerformanceReviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create performance review requested", zap.String("request_id", rid), zap.Uint("employee_id", req.EmployeeID), zap.Int("rating", req.Rating))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return PerformanceReviewResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, performancereviewerrors.ErrEmployeeMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create performance review failed", zap.String("request_id", rid), zap.Error(err))
		return PerformanceReviewResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create performance review success", zap.String("request_id", rid), zap.Uint("performance_review_id", row.PerformanceReviewID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req PerformanceReviewRequest) error {
	if req.PerformanceReviewID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update performance review requested", zap.String("request_id", rid), zap.Uint("performance_review_id", id))

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
			if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, performancereviewerrors.ErrEmployeeMissing); err != nil {
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
		s.logger.Warn("update performance review failed", zap.String("request_id", rid), zap.Uint("performance_review_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update performance review success", zap.String("request_id", rid), zap.Uint("performance_review_id", id))
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
			return performancereviewerrors.ErrPerformanceReviewNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete performance review failed", zap.String("request_id", rid), zap.Uint("performance_review_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete performance review success", zap.String("request_id", rid), zap.Uint("performance_review_id", id))
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

func toEntity(id uint, req PerformanceReviewRequest, version int64) (*domain.PerformanceReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.InvalidField("rating")
	}
	reviewed, err := request.ParseDate(req.ReviewDate)
	if err != nil {
		return nil, performancereviewerrors.ErrInvalidReviewDate
	}
	return &domain.PerformanceReview{
		PerformanceReviewID: id,
		EmployeeID:          req.EmployeeID,
		ReviewDate:          reviewed,
		ReviewComments:      req.ReviewComments,
		Rating:              req.Rating,
		Version:             version,
	}, nil
}

func mapToResponse(pr domain.PerformanceReview) PerformanceReviewResponse {
	return PerformanceReviewResponse{
		PerformanceReviewID: pr.PerformanceReviewID,
		EmployeeID:          pr.EmployeeID,
		ReviewDate:          request.FormatDate(pr.ReviewDate),
		ReviewComments:      pr.ReviewComments,
		Rating:              pr.Rating,
		Version:             pr.Version,
		Employee:            summary.FromEmployee(pr.Employee),
	}
}

func mapToListResponse(rows []domain.PerformanceReview) []PerformanceReviewResponse {
	res := make([]PerformanceReviewResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
