package benefiterrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Benefit not found",
		http.StatusNotFound,
	)
	ErrBenefitInUse = apperror.New(
		apperror.CodeConflict,
		"Benefit still has enrolled employees",
		http.StatusConflict,
	)
)
