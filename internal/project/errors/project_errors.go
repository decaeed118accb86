package projecterrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrManagerMissing = apperror.New(
		apperror.CodeConflict,
		"Manager employee does not exist",
		http.StatusConflict,
	)
	ErrProjectInUse = apperror.New(
		apperror.CodeConflict,
		"Project still has assigned employees",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidationError,
		"End Date must be a date on or after Start Date",
		http.StatusBadRequest,
	)
)
