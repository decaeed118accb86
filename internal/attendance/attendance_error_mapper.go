package attendance

import (
	"errors"

	attendanceerrors "github.com/bruno-marques98/CoreCrewApp/internal/attendance/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case dberror.IsNotFound(err):
		return attendanceerrors.ErrAttendanceNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsForeignKeyViolation(err):
		return attendanceerrors.ErrEmployeeMissing
	case dberror.IsCheckViolation(err):
		return apperror.InvalidField("status")
	}
	return err
}
