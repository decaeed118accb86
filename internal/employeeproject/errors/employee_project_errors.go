package employeeprojecterrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrEmployeeProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project assignment not found",
		http.StatusNotFound,
	)
	ErrEmployeeProjectExists = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned to this project",
		http.StatusConflict,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrProjectMissing = apperror.New(
		apperror.CodeConflict,
		"Project does not exist",
		http.StatusConflict,
	)
	ErrParentMissing = apperror.New(
		apperror.CodeConflict,
		"Employee or project does not exist",
		http.StatusConflict,
	)
	ErrInvalidAssignmentDate = apperror.New(
		apperror.CodeValidationError,
		"Assignment Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
