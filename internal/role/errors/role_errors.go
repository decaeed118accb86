package roleerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeConflict,
		"Role is still assigned to employees",
		http.StatusConflict,
	)
)
