package employee

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id uint) (*domain.Employee, error)
	Exists(ctx context.Context, id uint) (bool, error)
	DepartmentExists(ctx context.Context, departmentID uint) (bool, error)
	Create(ctx context.Context, empl *domain.Employee) error
	Update(ctx context.Context, empl *domain.Employee, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func key(id uint) crud.Key {
	return crud.Key{"employee_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	return crud.List[domain.Employee](ctx, r.db, "Department")
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Employee, error) {
	return crud.Get[domain.Employee](ctx, r.db, key(id), "Department")
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, key(id))
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID uint) (bool, error) {
	return crud.Exists[domain.Department](ctx, r.db, crud.Key{"department_id": departmentID})
}

func (r *repository) Create(ctx context.Context, empl *domain.Employee) error {
	return crud.Insert(ctx, r.db, empl)
}

func (r *repository) Update(ctx context.Context, empl *domain.Employee, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, empl, key(empl.EmployeeID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Employee](ctx, r.db, key(id))
}
