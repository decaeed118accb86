package performancereview_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/performancereview"
	performancereviewerrors "github.com/bruno-marques98/CoreCrewApp/internal/performancereview/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (performancereview.Service, *gorm.DB, uint) {
	t.Helper()
	db := testdb.Open(t, domain.Models()...)
	dept := domain.Department{Name: "Engineering", Version: 1}
	require.NoError(t, db.Create(&dept).Error)
	empl := domain.Employee{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@corecrew.io",
		HireDate:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		DepartmentID: dept.DepartmentID,
		Version:      1,
	}
	require.NoError(t, db.Create(&empl).Error)
	return performancereview.NewService(db, performancereview.NewRepository(db)), db, empl.EmployeeID
}

func TestPerformanceReviewService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, employeeID := setupService(t)

	comments := "Consistently strong"
	created, err := svc.Create(ctx, performancereview.PerformanceReviewRequest{
		EmployeeID:     employeeID,
		ReviewDate:     "2024-06-30",
		ReviewComments: &comments,
		Rating:         5,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.PerformanceReviewID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "2024-06-30", got.ReviewDate)
	require.NotNil(t, got.ReviewComments)

	t.Run("without comments", func(t *testing.T) {
		created, err := svc.Create(ctx, performancereview.PerformanceReviewRequest{EmployeeID: employeeID, ReviewDate: "2024-07-01", Rating: 3})
		require.NoError(t, err)
		assert.Nil(t, created.ReviewComments)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.Create(ctx, performancereview.PerformanceReviewRequest{EmployeeID: employeeID, ReviewDate: "2024-07-01", Rating: 9})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPStatus)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.Create(ctx, performancereview.PerformanceReviewRequest{EmployeeID: employeeID + 9, ReviewDate: "2024-07-01", Rating: 2})
		assert.ErrorIs(t, err, performancereviewerrors.ErrEmployeeMissing)
	})
}

func TestPerformanceReviewService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, employeeID := setupService(t)

	created, err := svc.Create(ctx, performancereview.PerformanceReviewRequest{EmployeeID: employeeID, ReviewDate: "2024-06-30", Rating: 2})
	require.NoError(t, err)
	id := created.PerformanceReviewID

	require.NoError(t, svc.Update(ctx, id, performancereview.PerformanceReviewRequest{PerformanceReviewID: id, EmployeeID: employeeID, ReviewDate: "2024-06-30", Rating: 3}))
	assert.ErrorIs(t, svc.Update(ctx, id, performancereview.PerformanceReviewRequest{PerformanceReviewID: id, EmployeeID: employeeID, ReviewDate: "2024-06-30", Rating: 3, Version: 1}), apperror.ErrConcurrentUpdate)
	assert.ErrorIs(t, svc.Update(ctx, 321, performancereview.PerformanceReviewRequest{PerformanceReviewID: 321, EmployeeID: employeeID, ReviewDate: "2024-06-30", Rating: 3}), performancereviewerrors.ErrPerformanceReviewNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, performancereviewerrors.ErrPerformanceReviewNotFound)
}
