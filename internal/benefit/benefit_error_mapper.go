package benefit

import (
	"errors"

	benefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/benefit/errors"
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
		return benefiterrors.ErrBenefitNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsCheckViolation(err):
		return apperror.InvalidField("cost")
	}
	return err
}
