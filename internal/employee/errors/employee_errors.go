package employeeerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDepartmentMissing = apperror.New(
		apperror.CodeConflict,
		"Department does not exist",
		http.StatusConflict,
	)
	ErrEmployeeInUse = apperror.New(
		apperror.CodeConflict,
		"Employee is still referenced by other records",
		http.StatusConflict,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidationError,
		"Hire Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
