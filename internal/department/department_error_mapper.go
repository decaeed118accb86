package department

import (
	"errors"

	departmenterrors "github.com/bruno-marques98/CoreCrewApp/internal/department/errors"
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
		return departmenterrors.ErrDepartmentNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsForeignKeyViolation(err):
		return departmenterrors.ErrDepartmentInUse
	}
	return err
}
