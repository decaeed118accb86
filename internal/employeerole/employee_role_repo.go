package employeerole

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Employee", "Role"}

//go:generate mockgen -source=employee_role_repo.go -destination=mock/employee_role_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.EmployeeRole, error)
	FindByID(ctx context.Context, employeeID, roleID uint) (*domain.EmployeeRole, error)
	Exists(ctx context.Context, employeeID, roleID uint) (bool, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	RoleExists(ctx context.Context, roleID uint) (bool, error)
	Create(ctx context.Context, er *domain.EmployeeRole) error
	Update(ctx context.Context, er *domain.EmployeeRole, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, employeeID, roleID uint) (int64, error)
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

func key(employeeID, roleID uint) crud.Key {
	return crud.Key{"employee_id": employeeID, "role_id": roleID}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.EmployeeRole, error) {
	return crud.List[domain.EmployeeRole](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, employeeID, roleID uint) (*domain.EmployeeRole, error) {
	return crud.Get[domain.EmployeeRole](ctx, r.db, key(employeeID, roleID), preloads...)
}

func (r *repository) Exists(ctx context.Context, employeeID, roleID uint) (bool, error) {
	return crud.Exists[domain.EmployeeRole](ctx, r.db, key(employeeID, roleID))
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": employeeID})
}

func (r *repository) RoleExists(ctx context.Context, roleID uint) (bool, error) {
	return crud.Exists[domain.Role](ctx, r.db, crud.Key{"role_id": roleID})
}

func (r *repository) Create(ctx context.Context, er *domain.EmployeeRole) error {
	return crud.Insert(ctx, r.db, er)
}

func (r *repository) Update(ctx context.Context, er *domain.EmployeeRole, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, er, key(er.EmployeeID, er.RoleID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, employeeID, roleID uint) (int64, error) {
	return crud.Remove[domain.EmployeeRole](ctx, r.db, key(employeeID, roleID))
}
