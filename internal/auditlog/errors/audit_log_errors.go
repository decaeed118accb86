package auditlogerrors

import (
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
)

var (
	ErrAuditLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Audit log not found",
		http.StatusNotFound,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeValidationError,
		"Timestamp must be RFC3339",
		http.StatusBadRequest,
	)
)
