package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/project"
	projecterrors "github.com/bruno-marques98/CoreCrewApp/internal/project/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (project.Service, *gorm.DB, uint) {
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
	return project.NewService(db, project.NewRepository(db)), db, empl.EmployeeID
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, managerID := setupService(t)

	end := "2024-12-31"
	created, err := svc.Create(ctx, project.ProjectRequest{Name: "Apollo", StartDate: "2024-01-01", EndDate: &end, ManagerID: managerID})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", got.Name)
	require.NotNil(t, got.Manager)
	assert.Equal(t, managerID, got.Manager.EmployeeID)
	assert.Empty(t, got.EmployeeProjects)

	t.Run("end before start", func(t *testing.T) {
		early := "2023-01-01"
		_, err := svc.Create(ctx, project.ProjectRequest{Name: "Late", StartDate: "2024-01-01", EndDate: &early, ManagerID: managerID})
		assert.ErrorIs(t, err, projecterrors.ErrInvalidPeriod)
	})

	t.Run("unknown manager", func(t *testing.T) {
		_, err := svc.Create(ctx, project.ProjectRequest{Name: "Ghost", StartDate: "2024-01-01", ManagerID: managerID + 10})
		assert.ErrorIs(t, err, projecterrors.ErrManagerMissing)
	})
}

func TestProjectService_AssignmentsAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, db, managerID := setupService(t)

	created, err := svc.Create(ctx, project.ProjectRequest{Name: "Gemini", StartDate: "2024-01-01", ManagerID: managerID})
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.EmployeeProject{
		EmployeeID:     managerID,
		ProjectID:      created.ProjectID,
		AssignmentDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Version:        1,
	}).Error)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].EmployeeProjects, 1)
	assert.Equal(t, "2024-02-01", all[0].EmployeeProjects[0].AssignmentDate)

	assert.ErrorIs(t, svc.Delete(ctx, created.ProjectID), projecterrors.ErrProjectInUse)

	err = svc.Update(ctx, created.ProjectID, project.ProjectRequest{ProjectID: created.ProjectID + 1, Name: "x", StartDate: "2024-01-01", ManagerID: managerID})
	assert.ErrorIs(t, err, apperror.ErrIDMismatch)
}
