package employeetraining

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Employee", "TrainingProgram"}

//go:generate mockgen -source=employee_training_repo.go -destination=mock/employee_training_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.EmployeeTraining, error)
	FindByID(ctx context.Context, employeeID, trainingProgramID uint) (*domain.EmployeeTraining, error)
	Exists(ctx context.Context, employeeID, trainingProgramID uint) (bool, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	TrainingProgramExists(ctx context.Context, trainingProgramID uint) (bool, error)
	Create(ctx context.Context, row *domain.EmployeeTraining) error
	Update(ctx context.Context, row *domain.EmployeeTraining, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, employeeID, trainingProgramID uint) (int64, error)
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

func key(employeeID, trainingProgramID uint) crud.Key {
	return crud.Key{"employee_id": employeeID, "training_program_id": trainingProgramID}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.EmployeeTraining, error) {
	return crud.List[domain.EmployeeTraining](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, employeeID, trainingProgramID uint) (*domain.EmployeeTraining, error) {
	return crud.Get[domain.EmployeeTraining](ctx, r.db, key(employeeID, trainingProgramID), preloads...)
}

func (r *repository) Exists(ctx context.Context, employeeID, trainingProgramID uint) (bool, error) {
	return crud.Exists[domain.EmployeeTraining](ctx, r.db, key(employeeID, trainingProgramID))
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": employeeID})
}

func (r *repository) TrainingProgramExists(ctx context.Context, trainingProgramID uint) (bool, error) {
	return crud.Exists[domain.TrainingProgram](ctx, r.db, crud.Key{"training_program_id": trainingProgramID})
}

func (r *repository) Create(ctx context.Context, row *domain.EmployeeTraining) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.EmployeeTraining, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.EmployeeID, row.TrainingProgramID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, employeeID, trainingProgramID uint) (int64, error) {
	return crud.Remove[domain.EmployeeTraining](ctx, r.db, key(employeeID, trainingProgramID))
}
