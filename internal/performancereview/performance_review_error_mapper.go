package performancereview

import (
	"errors"

	performancereviewerrors "github.com/bruno-marques98/CoreCrewApp/internal/performancereview/errors"
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
		return performancereviewerrors.ErrPerformanceReviewNotFound
	case errors.Is(err, crud.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate
	case dberror.IsForeignKeyViolation(err):
		return performancereviewerrors.ErrEmployeeMissing
	case dberror.IsCheckViolation(err):
		return apperror.InvalidField("rating")
	}
	return err
}
