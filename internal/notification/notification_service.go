package notification

import (
	"context"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	notificationerrors "github.com/bruno-marques98/CoreCrewApp/internal/notification/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]NotificationResponse, error)
	GetByID(ctx context.Context, id uint) (NotificationResponse, error)
	Create(ctx context.Context, req NotificationRequest) (NotificationResponse, error)
	Update(ctx context.Context, id uint, req NotificationRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]NotificationResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (NotificationResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return NotificationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req NotificationRequest) (NotificationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create notification requested", zap.String("request_id", rid), zap.Uint("employee_id", req.EmployeeID))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return NotificationResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, notificationerrors.ErrEmployeeMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create notification failed", zap.String("request_id", rid), zap.Error(err))
		return NotificationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create notification success", zap.String("request_id", rid), zap.Uint("notification_id", row.NotificationID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req NotificationRequest) error {
	if req.NotificationID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update notification requested", zap.String("request_id", rid), zap.Uint("notification_id", id))

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
			if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, notificationerrors.ErrEmployeeMissing); err != nil {
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
		s.logger.Warn("update notification failed", zap.String("request_id", rid), zap.Uint("notification_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update notification success", zap.String("request_id", rid), zap.Uint("notification_id", id))
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
			return notificationerrors.ErrNotificationNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete notification failed", zap.String("request_id", rid), zap.Uint("notification_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete notification success", zap.String("request_id", rid), zap.Uint("notification_id", id))
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

func toEntity(id uint, req NotificationRequest, version int64) (*domain.Notification, error) {
	ts, err := request.ParseOptionalDate(req.Timestamp)
	if err != nil {
		return nil, notificationerrors.ErrInvalidTimestamp
	}
	row := &domain.Notification{
		NotificationID: id,
		EmployeeID:     req.EmployeeID,
		Title:          req.Title,
		Message:        req.Message,
		Timestamp:      time.Now().UTC(),
		Version:        version,
	}
	if req.IsRead != nil {
		row.IsRead = *req.IsRead
	}
	if ts != nil {
		row.Timestamp = *ts
	}
	return row, nil
}

func mapToResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		EmployeeID:     n.EmployeeID,
		Title:          n.Title,
		Message:        n.Message,
		IsRead:         n.IsRead,
		Timestamp:      request.FormatTimestamp(n.Timestamp),
		Version:        n.Version,
		Employee:       summary.FromEmployee(n.Employee),
	}
}

func mapToListResponse(rows []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
