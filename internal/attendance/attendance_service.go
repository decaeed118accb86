package attendance

import (
	"context"

	attendanceerrors "github.com/bruno-marques98/CoreCrewApp/internal/attendance/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id uint) (AttendanceResponse, error)
	Create(ctx context.Context, req AttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, id uint, req AttendanceRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list attendances failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Create(ctx context.Context, req AttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance requested", zap.String("request_id", rid), zap.Uint("employee_id", req.EmployeeID), zap.String("status", req.Status))

	row, err := toEntity(0, req, 1)
	if err != nil {
		return AttendanceResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, attendanceerrors.ErrEmployeeMissing); err != nil {
			return err
		}
		return qtx.Create(ctx, row)
	})
	if err != nil {
		s.logger.Warn("create attendance failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create attendance success", zap.String("request_id", rid), zap.Uint("attendance_id", row.AttendanceID))
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req AttendanceRequest) error {
	if req.AttendanceID != id {
		return apperror.ErrIDMismatch
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update attendance requested", zap.String("request_id", rid), zap.Uint("attendance_id", id))

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
			if err := ensureExists(ctx, qtx.EmployeeExists, req.EmployeeID, attendanceerrors.ErrEmployeeMissing); err != nil {
				return err
			}
		}

		next, err := toEntity(id, req, current.Version+1)
		if err != nil {
			return err
		}
		next.CreatedAt = current.CreatedAt
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
		s.logger.Warn("update attendance failed", zap.String("request_id", rid), zap.Uint("attendance_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update attendance success", zap.String("request_id", rid), zap.Uint("attendance_id", id))
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
			return attendanceerrors.ErrAttendanceNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete attendance failed", zap.String("request_id", rid), zap.Uint("attendance_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete attendance success", zap.String("request_id", rid), zap.Uint("attendance_id", id))
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

func toEntity(id uint, req AttendanceRequest, version int64) (*domain.Attendance, error) {
	status := domain.AttendanceStatus(req.Status)
	switch status {
	case domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceOnLeave:
	default:
		return nil, apperror.InvalidField("status")
	}
	in, err := request.ParseDate(req.CheckInTime)
	if err != nil {
		return nil, apperror.InvalidField("checkInTime")
	}
	out, err := request.ParseDate(req.CheckOutTime)
	if err != nil {
		return nil, apperror.InvalidField("checkOutTime")
	}
	if out.Before(in) {
		return nil, attendanceerrors.ErrInvalidTimes
	}
	return &domain.Attendance{
		AttendanceID: id,
		EmployeeID:   req.EmployeeID,
		Status:       status,
		CheckInTime:  in,
		CheckOutTime: out,
		Version:      version,
	}, nil
}

func mapToResponse(a domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		EmployeeID:   a.EmployeeID,
		Status:       string(a.Status),
		CheckInTime:  request.FormatTimestamp(a.CheckInTime),
		CheckOutTime: request.FormatTimestamp(a.CheckOutTime),
		CreatedAt:    request.FormatTimestamp(a.CreatedAt),
		UpdatedAt:    request.FormatTimestamp(a.UpdatedAt),
		Version:      a.Version,
		Employee:     summary.FromEmployee(a.Employee),
	}
}

func mapToListResponse(rows []domain.Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
