package employeetraining

import (
	"errors"

	employeetrainingerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeetraining/errors"
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
		return employeetrainingerrors.ErrEmployeeTrainingNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsUniqueViolation(err):
		return employeetrainingerrors.ErrEmployeeTrainingExists
	case dberror.IsForeignKeyViolation(err):
		return employeetrainingerrors.ErrParentMissing
	}
	return err
}
