package employeetraining_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeetraining"
	employeetrainingerrors "github.com/bruno-marques98/CoreCrewApp/internal/employeetraining/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc               employeetraining.Service
	employeeID        uint
	trainingProgramID uint
}

func setup(t *testing.T) fixture {
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
	tp := domain.TrainingProgram{Name: "Go Basics", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TrainerID: empl.EmployeeID, Version: 1}
	require.NoError(t, db.Create(&tp).Error)

	return fixture{
		svc:               employeetraining.NewService(db, employeetraining.NewRepository(db)),
		employeeID:        empl.EmployeeID,
		trainingProgramID: tp.TrainingProgramID,
	}
}

func TestEmployeeTrainingService_Create(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	req := employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: f.trainingProgramID, EnrollmentDate: "2024-05-01"}

	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	got, err := f.svc.GetByID(ctx, f.employeeID, f.trainingProgramID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.EnrollmentDate)
	require.NotNil(t, got.Employee)
	require.NotNil(t, got.TrainingProgram)
	assert.Equal(t, "Go Basics", got.TrainingProgram.Name)

	t.Run("same key again", func(t *testing.T) {
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeetrainingerrors.ErrEmployeeTrainingExists)
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := f.svc.Create(ctx, employeetraining.EmployeeTrainingRequest{EmployeeID: 404, TrainingProgramID: f.trainingProgramID, EnrollmentDate: "2024-05-01"})
		assert.ErrorIs(t, err, employeetrainingerrors.ErrEmployeeMissing)
	})

	t.Run("missing training program", func(t *testing.T) {
		_, err := f.svc.Create(ctx, employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: 404, EnrollmentDate: "2024-05-01"})
		assert.ErrorIs(t, err, employeetrainingerrors.ErrTrainingProgramMissing)
	})
}

func TestEmployeeTrainingService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Create(ctx, employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: f.trainingProgramID, EnrollmentDate: "2024-05-01"})
	require.NoError(t, err)

	t.Run("key mismatch", func(t *testing.T) {
		err := f.svc.Update(ctx, f.employeeID, f.trainingProgramID, employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: f.trainingProgramID + 1, EnrollmentDate: "2024-06-01"})
		assert.ErrorIs(t, err, apperror.ErrIDMismatch)
	})

	t.Run("replace assign date", func(t *testing.T) {
		require.NoError(t, f.svc.Update(ctx, f.employeeID, f.trainingProgramID, employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: f.trainingProgramID, EnrollmentDate: "2024-06-01", Version: 1}))

		got, err := f.svc.GetByID(ctx, f.employeeID, f.trainingProgramID)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", got.EnrollmentDate)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("missing row", func(t *testing.T) {
		err := f.svc.Update(ctx, f.employeeID, 99, employeetraining.EmployeeTrainingRequest{EmployeeID: f.employeeID, TrainingProgramID: 99, EnrollmentDate: "2024-06-01"})
		assert.ErrorIs(t, err, employeetrainingerrors.ErrEmployeeTrainingNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, f.employeeID, f.trainingProgramID))
		assert.ErrorIs(t, f.svc.Delete(ctx, f.employeeID, f.trainingProgramID), employeetrainingerrors.ErrEmployeeTrainingNotFound)
	})
}

func TestEmployeeTrainingService_CompletionDate(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	before := "2024-04-30"
	_, err := f.svc.Create(ctx, employeetraining.EmployeeTrainingRequest{
		EmployeeID:        f.employeeID,
		TrainingProgramID: f.trainingProgramID,
		EnrollmentDate:    "2024-05-01",
		CompletionDate:    &before,
	})
	assert.ErrorIs(t, err, employeetrainingerrors.ErrInvalidCompletionDate)

	done := "2024-07-15"
	created, err := f.svc.Create(ctx, employeetraining.EmployeeTrainingRequest{
		EmployeeID:        f.employeeID,
		TrainingProgramID: f.trainingProgramID,
		EnrollmentDate:    "2024-05-01",
		CompletionDate:    &done,
	})
	require.NoError(t, err)
	require.NotNil(t, created.CompletionDate)
	assert.Equal(t, "2024-07-15", *created.CompletionDate)
}
