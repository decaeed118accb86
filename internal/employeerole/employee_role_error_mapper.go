package employeerole

import (
	"errors"

	employeeroleerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeerole/errors"
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
		return employeeroleerrors.ErrEmployeeRoleNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsUniqueViolation(err):
		return employeeroleerrors.ErrEmployeeRoleExists
	case dberror.IsForeignKeyViolation(err):
		return employeeroleerrors.ErrParentMissing
	}
	return err
}
