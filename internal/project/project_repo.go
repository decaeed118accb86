package project

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Manager", "EmployeeProjects.Employee"}

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id uint) (*domain.Project, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ManagerExists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, row *domain.Project) error
	Update(ctx context.Context, row *domain.Project, expectedVersion int64) (int64, error)
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
	return crud.Key{"project_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Project, error) {
	return crud.List[domain.Project](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	return crud.Get[domain.Project](ctx, r.db, key(id), preloads...)
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Project](ctx, r.db, key(id))
}

func (r *repository) ManagerExists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": id})
}

func (r *repository) Create(ctx context.Context, row *domain.Project) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.Project, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.ProjectID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Project](ctx, r.db, key(id))
}
