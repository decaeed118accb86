package auditlog

import (
	"context"
	"time"

	auditlogerrors "github.com/bruno-marques98/CoreCrewApp/internal/auditlog/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_log_service.go -destination=mock/audit_log_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]AuditLogResponse, error)
	GetByID(ctx context.Context, id uint) (AuditLogResponse, error)
	Create(ctx context.Context, req AuditLogRequest) (AuditLogResponse, error)
	Update(ctx context.Context, id uint, req AuditLogRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]AuditLogResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list audit logs failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AuditLogResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AuditLogResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req AuditLogRequest) (AuditLogResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create audit log requested", zap.String("request_id", rid), zap.String("action", req.Action), zap.String("table_name", req.TableName))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return AuditLogResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create audit log failed", zap.String("request_id", rid), zap.Error(err))
		return AuditLogResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create audit log success", zap.String("request_id", rid), zap.Uint("audit_log_id", row.AuditLogID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req AuditLogRequest) error {
	if req.AuditLogID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update audit log requested", zap.String("request_id", rid), zap.Uint("audit_log_id", id))

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
		s.logger.Warn("update audit log failed", zap.String("request_id", rid), zap.Uint("audit_log_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update audit log success", zap.String("request_id", rid), zap.Uint("audit_log_id", id))
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
			return auditlogerrors.ErrAuditLogNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete audit log failed", zap.String("request_id", rid), zap.Uint("audit_log_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete audit log success", zap.String("request_id", rid), zap.Uint("audit_log_id", id))
	return nil
}

func toEntity(id uint, req AuditLogRequest, version int64) (*domain.AuditLog, error) {
	ts, err := request.ParseOptionalDate(req.Timestamp)
	if err != nil {
		return nil, auditlogerrors.ErrInvalidTimestamp
	}
	row := &domain.AuditLog{
		AuditLogID: id,
		Action:     req.Action,
		Table:      req.TableName,
		RecordID:   req.RecordID,
		UserName:   req.UserName,
		Timestamp:  time.Now().UTC(),
		Details:    req.Details,
		Version:    version,
	}
	if ts != nil {
		row.Timestamp = *ts
	}
	return row, nil
}

func mapToResponse(a domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID: a.AuditLogID,
		Action:     a.Action,
		TableName:  a.Table,
		RecordID:   a.RecordID,
		UserName:   a.UserName,
		Timestamp:  request.FormatTimestamp(a.Timestamp),
		Details:    a.Details,
		Version:    a.Version,
	}
}

func mapToListResponse(rows []domain.AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
