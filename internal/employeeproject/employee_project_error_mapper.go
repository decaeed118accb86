package employeeproject

import (
	"errors"

	employeeprojecterrors "github.com/bruno-marques98/CoreCrewApp/internal/employeeproject/errors"
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
		return employeeprojecterrors.ErrEmployeeProjectNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsUniqueViolation(err):
		return employeeprojecterrors.ErrEmployeeProjectExists
	case dberror.IsForeignKeyViolation(err):
		return employeeprojecterrors.ErrParentMissing
	}
	return err
}
