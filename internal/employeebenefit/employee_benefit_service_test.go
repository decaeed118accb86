package employeebenefit_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit"
	employeebenefiterrors "github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        employeebenefit.Service
	employeeID uint
	benefitID  uint
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
	b := domain.Benefit{Name: "Dental", Cost: decimal.NewFromInt(40), Version: 1}
	require.NoError(t, db.Create(&b).Error)

	return fixture{
		svc:        employeebenefit.NewService(db, employeebenefit.NewRepository(db)),
		employeeID: empl.EmployeeID,
		benefitID:  b.BenefitID,
	}
}

func TestEmployeeBenefitService_Create(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	req := employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: f.benefitID, EnrollmentDate: "2024-05-01"}

	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	got, err := f.svc.GetByID(ctx, f.employeeID, f.benefitID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.EnrollmentDate)
	require.NotNil(t, got.Employee)
	require.NotNil(t, got.Benefit)
	assert.Equal(t, "Dental", got.Benefit.Name)

	t.Run("same key again", func(t *testing.T) {
		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeebenefiterrors.ErrEmployeeBenefitExists)
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := f.svc.Create(ctx, employeebenefit.EmployeeBenefitRequest{EmployeeID: 404, BenefitID: f.benefitID, EnrollmentDate: "2024-05-01"})
		assert.ErrorIs(t, err, employeebenefiterrors.ErrEmployeeMissing)
	})

	t.Run("missing benefit", func(t *testing.T) {
		_, err := f.svc.Create(ctx, employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: 404, EnrollmentDate: "2024-05-01"})
		assert.ErrorIs(t, err, employeebenefiterrors.ErrBenefitMissing)
	})
}

func TestEmployeeBenefitService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.Create(ctx, employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: f.benefitID, EnrollmentDate: "2024-05-01"})
	require.NoError(t, err)

	t.Run("key mismatch", func(t *testing.T) {
		err := f.svc.Update(ctx, f.employeeID, f.benefitID, employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: f.benefitID + 1, EnrollmentDate: "2024-06-01"})
		assert.ErrorIs(t, err, apperror.ErrIDMismatch)
	})

	t.Run("replace assign date", func(t *testing.T) {
		require.NoError(t, f.svc.Update(ctx, f.employeeID, f.benefitID, employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: f.benefitID, EnrollmentDate: "2024-06-01", Version: 1}))

		got, err := f.svc.GetByID(ctx, f.employeeID, f.benefitID)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", got.EnrollmentDate)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("missing row", func(t *testing.T) {
		err := f.svc.Update(ctx, f.employeeID, 99, employeebenefit.EmployeeBenefitRequest{EmployeeID: f.employeeID, BenefitID: 99, EnrollmentDate: "2024-06-01"})
		assert.ErrorIs(t, err, employeebenefiterrors.ErrEmployeeBenefitNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, f.employeeID, f.benefitID))
		assert.ErrorIs(t, f.svc.Delete(ctx, f.employeeID, f.benefitID), employeebenefiterrors.ErrEmployeeBenefitNotFound)
	})
}
