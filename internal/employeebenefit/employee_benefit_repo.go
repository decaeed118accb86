package employeebenefit

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Employee", "Benefit"}

//go:generate mockgen -source=employee_benefit_repo.go -destination=mock/employee_benefit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.EmployeeBenefit, error)
	FindByID(ctx context.Context, employeeID, benefitID uint) (*domain.EmployeeBenefit, error)
	Exists(ctx context.Context, employeeID, benefitID uint) (bool, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	BenefitExists(ctx context.Context, benefitID uint) (bool, error)
	Create(ctx context.Context, row *domain.EmployeeBenefit) error
	Update(ctx context.Context, row *domain.EmployeeBenefit, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, employeeID, benefitID uint) (int64, error)
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

func key(employeeID, benefitID uint) crud.Key {
	return crud.Key{"employee_id": employeeID, "benefit_id": benefitID}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.EmployeeBenefit, error) {
	return crud.List[domain.EmployeeBenefit](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, employeeID, benefitID uint) (*domain.EmployeeBenefit, error) {
	return crud.Get[domain.EmployeeBenefit](ctx, r.db, key(employeeID, benefitID), preloads...)
}

func (r *repository) Exists(ctx context.Context, employeeID, benefitID uint) (bool, error) {
	return crud.Exists[domain.EmployeeBenefit](ctx, r.db, key(employeeID, benefitID))
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": employeeID})
}

func (r *repository) BenefitExists(ctx context.Context, benefitID uint) (bool, error) {
	return crud.Exists[domain.Benefit](ctx, r.db, crud.Key{"benefit_id": benefitID})
}

func (r *repository) Create(ctx context.Context, row *domain.EmployeeBenefit) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.EmployeeBenefit, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.EmployeeID, row.BenefitID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, employeeID, benefitID uint) (int64, error) {
	return crud.Remove[domain.EmployeeBenefit](ctx, r.db, key(employeeID, benefitID))
}
