package employee

import (
	"errors"

	employeeerrors "github.com/bruno-marques98/CoreCrewApp/internal/employee/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/dberror"
)

// mapRepositoryError is used for create and update; delete maps foreign key
// violations itself because there they mean the employee is still in use.
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
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsForeignKeyViolation(err):
		return employeeerrors.ErrDepartmentMissing
	}
	return err
}
