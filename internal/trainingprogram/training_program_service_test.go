package trainingprogram_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"
	"github.com/bruno-marques98/CoreCrewApp/internal/trainingprogram"
	trainingprogramerrors "github.com/bruno-marques98/CoreCrewApp/internal/trainingprogram/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (trainingprogram.Service, *gorm.DB, uint) {
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
	return trainingprogram.NewService(db, trainingprogram.NewRepository(db)), db, empl.EmployeeID
}

func TestTrainingProgramService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, trainerID := setupService(t)

	created, err := svc.Create(ctx, trainingprogram.TrainingProgramRequest{Name: "Go Basics", StartDate: "2024-03-01", TrainerID: trainerID})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)

	got, err := svc.GetByID(ctx, created.TrainingProgramID)
	require.NoError(t, err)
	require.NotNil(t, got.Trainer)
	assert.Equal(t, "Ada", got.Trainer.FirstName)

	_, err = svc.Create(ctx, trainingprogram.TrainingProgramRequest{Name: "x", StartDate: "2024-03-01", TrainerID: trainerID + 4})
	assert.ErrorIs(t, err, trainingprogramerrors.ErrTrainerMissing)
}

func TestTrainingProgramService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, db, trainerID := setupService(t)

	created, err := svc.Create(ctx, trainingprogram.TrainingProgramRequest{Name: "Go Basics", StartDate: "2024-03-01", TrainerID: trainerID})
	require.NoError(t, err)
	id := created.TrainingProgramID

	end := "2024-03-31"
	require.NoError(t, svc.Update(ctx, id, trainingprogram.TrainingProgramRequest{TrainingProgramID: id, Name: "Go Basics", StartDate: "2024-03-01", EndDate: &end, TrainerID: trainerID, Version: 1}))
	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, end, *got.EndDate)

	assert.ErrorIs(t, svc.Update(ctx, id, trainingprogram.TrainingProgramRequest{TrainingProgramID: id, Name: "x", StartDate: "2024-03-01", TrainerID: trainerID, Version: 1}), apperror.ErrConcurrentUpdate)

	require.NoError(t, db.Create(&domain.EmployeeTraining{
		EmployeeID:        trainerID,
		TrainingProgramID: id,
		EnrollmentDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Version:           1,
	}).Error)
	assert.ErrorIs(t, svc.Delete(ctx, id), trainingprogramerrors.ErrTrainingProgramInUse)
	assert.ErrorIs(t, svc.Delete(ctx, id+1), trainingprogramerrors.ErrTrainingProgramNotFound)
}
