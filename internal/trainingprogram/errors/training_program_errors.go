package trainingprogramerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrTrainingProgramNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training program not found",
		http.StatusNotFound,
	)
	ErrTrainerMissing = apperror.New(
		apperror.CodeConflict,
		"Trainer employee does not exist",
		http.StatusConflict,
	)
	ErrTrainingProgramInUse = apperror.New(
		apperror.CodeConflict,
		"Training program still has enrolled employees",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidationError,
		"End Date must be a date on or after Start Date",
		http.StatusBadRequest,
	)
)
