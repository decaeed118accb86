package department

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Department, error)
	FindByID(ctx context.Context, id uint) (*domain.Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department, expectedVersion int64) (int64, error)
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
	return crud.Key{"department_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Department, error) {
	return crud.List[domain.Department](ctx, r.db, "Employees")
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Department, error) {
	return crud.Get[domain.Department](ctx, r.db, key(id), "Employees")
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Department](ctx, r.db, key(id))
}

func (r *repository) Create(ctx context.Context, dept *domain.Department) error {
	return crud.Insert(ctx, r.db, dept)
}

func (r *repository) Update(ctx context.Context, dept *domain.Department, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, dept, key(dept.DepartmentID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Department](ctx, r.db, key(id))
}
