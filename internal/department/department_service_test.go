package department_test

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/department"
	departmenterrors "github.com/bruno-marques98/CoreCrewApp/internal/department/errors"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (department.Service, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t, domain.Models()...)
	return department.NewService(db, department.NewRepository(db)), db
}

func TestDepartmentService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	created, err := svc.Create(ctx, department.DepartmentRequest{Name: "Finance"})
	require.NoError(t, err)
	assert.NotZero(t, created.DepartmentID)
	assert.Equal(t, int64(1), created.Version)

	got, err := svc.GetByID(ctx, created.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Name)
	assert.Empty(t, got.Employees)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDepartmentService_GetAllLoadsEmployees(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t)

	created, err := svc.Create(ctx, department.DepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.Employee{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@corecrew.io",
		HireDate:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		DepartmentID: created.DepartmentID,
		Version:      1,
	}).Error)

	got, err := svc.GetByID(ctx, created.DepartmentID)
	require.NoError(t, err)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, "Ada", got.Employees[0].FirstName)
	assert.Equal(t, "2024-01-02", got.Employees[0].HireDate)
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	created, err := svc.Create(ctx, department.DepartmentRequest{Name: "HR"})
	require.NoError(t, err)
	id := created.DepartmentID

	t.Run("id mismatch leaves row untouched", func(t *testing.T) {
		err := svc.Update(ctx, id, department.DepartmentRequest{DepartmentID: id + 1, Name: "Other"})
		assert.ErrorIs(t, err, apperror.ErrIDMismatch)

		got, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "HR", got.Name)
	})

	t.Run("without version last writer wins", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, id, department.DepartmentRequest{DepartmentID: id, Name: "People"}))

		got, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "People", got.Name)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		err := svc.Update(ctx, id, department.DepartmentRequest{DepartmentID: id, Name: "Stale", Version: 1})
		assert.ErrorIs(t, err, apperror.ErrConcurrentUpdate)
	})

	t.Run("current version succeeds", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, id, department.DepartmentRequest{DepartmentID: id, Name: "People Ops", Version: 2}))
	})

	t.Run("missing row is not inserted", func(t *testing.T) {
		err := svc.Update(ctx, 999, department.DepartmentRequest{DepartmentID: 999, Name: "Ghost"})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)

		_, err = svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t)

	t.Run("delete then get is not found", func(t *testing.T) {
		created, err := svc.Create(ctx, department.DepartmentRequest{Name: "Temp"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.DepartmentID))

		_, err = svc.GetByID(ctx, created.DepartmentID)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, 4242), departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("referenced by employee", func(t *testing.T) {
		created, err := svc.Create(ctx, department.DepartmentRequest{Name: "Sales"})
		require.NoError(t, err)
		require.NoError(t, db.Create(&domain.Employee{
			FirstName:    "Grace",
			LastName:     "Hopper",
			Email:        "grace@corecrew.io",
			HireDate:     time.Now().UTC(),
			DepartmentID: created.DepartmentID,
			Version:      1,
		}).Error)

		err = svc.Delete(ctx, created.DepartmentID)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentInUse)
	})
}

// The transaction must roll back when the insert fails.
func TestDepartmentService_CreateRollsBack(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	repo := &fakeRepository{
		createFn: func(ctx context.Context, dept *domain.Department) error {
			return assert.AnError
		},
	}
	svc := department.NewService(gormDB, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = svc.Create(context.Background(), department.DepartmentRequest{Name: "Finance"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type fakeRepository struct {
	createFn func(ctx context.Context, dept *domain.Department) error
}

func (f *fakeRepository) WithTx(tx *gorm.DB) department.Repository { return f }

func (f *fakeRepository) FindAll(ctx context.Context) ([]domain.Department, error) {
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*domain.Department, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Exists(ctx context.Context, id uint) (bool, error) { return false, nil }

func (f *fakeRepository) Create(ctx context.Context, dept *domain.Department) error {
	return f.createFn(ctx, dept)
}

func (f *fakeRepository) Update(ctx context.Context, dept *domain.Department, expectedVersion int64) (int64, error) {
	return 0, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) (int64, error) { return 0, nil }
