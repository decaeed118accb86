package leaverequest

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	leaverequesterrors "github.com/bruno-marques98/CoreCrewApp/internal/leaverequest/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, id uint) (LeaveRequestResponse, error)
	Create(ctx context.Context, req LeaveRequestRequest) (LeaveRequestResponse, error)
	Update(ctx context.Context, id uint, req LeaveRequestRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]LeaveRequestResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list leave requests failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (LeaveRequestResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req LeaveRequestRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request requested", zap.String("request_id", rid), zap.Uint("employee_id", req.EmployeeID))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	// New requests always start pending.
	row.Status = domain.LeaveStatusPending

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, leaverequesterrors.ErrEmployeeMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create leave request failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave request success", zap.String("request_id", rid), zap.Uint("leave_request_id", row.LeaveRequestID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req LeaveRequestRequest) error {
	if req.LeaveRequestID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave request requested", zap.String("request_id", rid), zap.Uint("leave_request_id", id))

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
			if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, leaverequesterrors.ErrEmployeeMissing); err != nil {
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
		s.logger.Warn("update leave request failed", zap.String("request_id", rid), zap.Uint("leave_request_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update leave request success", zap.String("request_id", rid), zap.Uint("leave_request_id", id))
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
			return leaverequesterrors.ErrLeaveRequestNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete leave request failed", zap.String("request_id", rid), zap.Uint("leave_request_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete leave request success", zap.String("request_id", rid), zap.Uint("leave_request_id", id))
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

func parseStatus(raw *string) (domain.LeaveStatus, error) {
	if raw == nil {
		return domain.LeaveStatusPending, nil
	}
	switch status := domain.LeaveStatus(*raw); status {
	case domain.LeaveStatusPending, domain.LeaveStatusApproved, domain.LeaveStatusRejected:
		return status, nil
	}
	return "", apperror.InvalidField("status")
}

func toEntity(id uint, req LeaveRequestRequest, version int64) (*domain.LeaveRequest, error) {
	start, err := request.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperror.InvalidField("startDate")
	}
	end, err := request.ParseDate(req.EndDate)
	if err != nil || end.Before(start) {
		return nil, leaverequesterrors.ErrInvalidPeriod
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return &domain.LeaveRequest{
		LeaveRequestID: id,
		EmployeeID:     req.EmployeeID,
		StartDate:      start,
		EndDate:        end,
		Reason:         req.Reason,
		Status:         status,
		Version:        version,
	}, nil
}

func mapToResponse(lr domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		LeaveRequestID: lr.LeaveRequestID,
		EmployeeID:     lr.EmployeeID,
		StartDate:      request.FormatDate(lr.StartDate),
		EndDate:        request.FormatDate(lr.EndDate),
		Reason:         lr.Reason,
		Status:         string(lr.Status),
		Version:        lr.Version,
		Employee:       summary.FromEmployee(lr.Employee),
	}
}

func mapToListResponse(rows []domain.LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
