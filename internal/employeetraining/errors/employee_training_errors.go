package employeetrainingerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrEmployeeTrainingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training enrollment not found",
		http.StatusNotFound,
	)
	ErrEmployeeTrainingExists = apperror.New(
		apperror.CodeConflict,
		"Employee is already enrolled in this training program",
		http.StatusConflict,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrTrainingProgramMissing = apperror.New(
		apperror.CodeConflict,
		"Training program does not exist",
		http.StatusConflict,
	)
	ErrParentMissing = apperror.New(
		apperror.CodeConflict,
		"Employee or training program does not exist",
		http.StatusConflict,
	)
	ErrInvalidEnrollmentDate = apperror.New(
		apperror.CodeValidationError,
		"Enrollment Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidCompletionDate = apperror.New(
		apperror.CodeValidationError,
		"Completion Date must be YYYY-MM-DD and not before the enrollment date",
		http.StatusBadRequest,
	)
)
