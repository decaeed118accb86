package salary

import (
	"errors"

	salaryerrors "github.com/bruno-marques98/CoreCrewApp/internal/salary/errors"
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
		return salaryerrors.ErrSalaryNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsForeignKeyViolation(err):
		return salaryerrors.ErrEmployeeMissing
	case dberror.IsCheckViolation(err):
		return apperror.InvalidField("amount")
	}
	return err
}
