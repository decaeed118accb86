package employeebenefiterrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrEmployeeBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee benefit enrollment not found",
		http.StatusNotFound,
	)
	ErrEmployeeBenefitExists = apperror.New(
		apperror.CodeConflict,
		"Employee is already enrolled in this benefit",
		http.StatusConflict,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrBenefitMissing = apperror.New(
		apperror.CodeConflict,
		"Benefit does not exist",
		http.StatusConflict,
	)
	ErrParentMissing = apperror.New(
		apperror.CodeConflict,
		"Employee or benefit does not exist",
		http.StatusConflict,
	)
	ErrInvalidEnrollmentDate = apperror.New(
		apperror.CodeValidationError,
		"Enrollment Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
