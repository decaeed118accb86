package performancereviewerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrPerformanceReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Performance review not found",
		http.StatusNotFound,
	)
	ErrEmployeeMissing = apperror.New(
		apperror.CodeConflict,
		"Employee does not exist",
		http.StatusConflict,
	)
	ErrInvalidReviewDate = apperror.New(
		apperror.CodeValidationError,
		"Review Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
