package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/attendance"
	attendanceerrors "github.com/bruno-marques98/CoreCrewApp/internal/attendance/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (attendance.Service, *gorm.DB, uint) {
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
	return attendance.NewService(db, attendance.NewRepository(db)), db, empl.EmployeeID
}

func newRequest(employeeID uint) attendance.AttendanceRequest {
	return attendance.AttendanceRequest{
		EmployeeID:   employeeID,
		Status:       "Present",
		CheckInTime:  "2024-05-02T08:00:00Z",
		CheckOutTime: "2024-05-02T17:00:00Z",
	}
}

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, employeeID := setupService(t)

	created, err := svc.Create(ctx, newRequest(employeeID))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02T08:00:00Z", created.CheckInTime)
	assert.NotEqual(t, "0001-01-01T00:00:00Z", created.CreatedAt)

	got, err := svc.GetByID(ctx, created.AttendanceID)
	require.NoError(t, err)
	assert.Equal(t, "Present", got.Status)
	require.NotNil(t, got.Employee)

	t.Run("check out before check in", func(t *testing.T) {
		req := newRequest(employeeID)
		req.CheckOutTime = "2024-05-02T07:00:00Z"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimes)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.Create(ctx, newRequest(employeeID+1))
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeMissing)
	})
}

func TestAttendanceService_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc, _, employeeID := setupService(t)

	created, err := svc.Create(ctx, newRequest(employeeID))
	require.NoError(t, err)
	id := created.AttendanceID

	req := newRequest(employeeID)
	req.AttendanceID = id
	req.Status = "OnLeave"
	require.NoError(t, svc.Update(ctx, id, req))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "OnLeave", got.Status)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	req.AttendanceID = id + 1
	assert.ErrorIs(t, svc.Update(ctx, id, req), apperror.ErrIDMismatch)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), attendanceerrors.ErrAttendanceNotFound)
}
