package attendanceerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrInvalidTimes = apperror.New(
		apperror.CodeValidationError,
		"Check Out Time must not be before Check In Time",
		http.StatusBadRequest,
	)
)
