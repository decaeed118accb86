package settingerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Setting not found",
		http.StatusNotFound,
	)
	ErrSettingExists = apperror.New(
		apperror.CodeConflict,
		"A setting with this name already exists",
		http.StatusConflict,
	)
)
