package role

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id uint) (*domain.Role, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, entity *domain.Role) error
	Update(ctx context.Context, entity *domain.Role, expectedVersion int64) (int64, error)
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
	return crud.Key{"role_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Role, error) {
	return crud.List[domain.Role](ctx, r.db, "EmployeeRoles.Employee")
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Role, error) {
	return crud.Get[domain.Role](ctx, r.db, key(id), "EmployeeRoles.Employee")
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Role](ctx, r.db, key(id))
}

func (r *repository) Create(ctx context.Context, entity *domain.Role) error {
	return crud.Insert(ctx, r.db, entity)
}

func (r *repository) Update(ctx context.Context, entity *domain.Role, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, entity, key(entity.RoleID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Role](ctx, r.db, key(id))
}
