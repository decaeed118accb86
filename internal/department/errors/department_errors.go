package departmenterrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department still has employees",
		http.StatusConflict,
	)
)
