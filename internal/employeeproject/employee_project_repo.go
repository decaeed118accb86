package employeeproject

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Employee", "Project"}

//go:generate mockgen -source=employee_project_repo.go -destination=mock/employee_project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.EmployeeProject, error)
	FindByID(ctx context.Context, employeeID, projectID uint) (*domain.EmployeeProject, error)
	Exists(ctx context.Context, employeeID, projectID uint) (bool, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	ProjectExists(ctx context.Context, projectID uint) (bool, error)
	Create(ctx context.Context, row *domain.EmployeeProject) error
	Update(ctx context.Context, row *domain.EmployeeProject, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, employeeID, projectID uint) (int64, error)
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

func key(employeeID, projectID uint) crud.Key {
	return crud.Key{"employee_id": employeeID, "project_id": projectID}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.EmployeeProject, error) {
	return crud.List[domain.EmployeeProject](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, employeeID, projectID uint) (*domain.EmployeeProject, error) {
	return crud.Get[domain.EmployeeProject](ctx, r.db, key(employeeID, projectID), preloads...)
}

func (r *repository) Exists(ctx context.Context, employeeID, projectID uint) (bool, error) {
	return crud.Exists[domain.EmployeeProject](ctx, r.db, key(employeeID, projectID))
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": employeeID})
}

func (r *repository) ProjectExists(ctx context.Context, projectID uint) (bool, error) {
	return crud.Exists[domain.Project](ctx, r.db, crud.Key{"project_id": projectID})
}

func (r *repository) Create(ctx context.Context, row *domain.EmployeeProject) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.EmployeeProject, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.EmployeeID, row.ProjectID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, employeeID, projectID uint) (int64, error) {
	return crud.Remove[domain.EmployeeProject](ctx, r.db, key(employeeID, projectID))
}
