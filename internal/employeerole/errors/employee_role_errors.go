package employeeroleerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrEmployeeRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee role assignment not found",
		http.StatusNotFound,
	)
	ErrEmployeeRoleExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has this role",
		http.StatusConflict,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrRoleMissing = apperror.New(
		apperror.CodeConflict,
		"Role does not exist",
		http.StatusConflict,
	)
	ErrParentMissing = apperror.New(
		apperror.CodeConflict,
		"Employee or role does not exist",
		http.StatusConflict,
	)
	ErrInvalidAssignDate = apperror.New(
		apperror.CodeValidationError,
		"Assign Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
