package auditlog

import (
	"errors"

	auditlogerrors "github.com/bruno-marques98/CoreCrewApp/internal/auditlog/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case dberror.IsNotFound(err):
		return auditlogerrors.ErrAuditLogNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	}
	return err
}
