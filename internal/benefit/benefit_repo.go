package benefit

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Benefit, error)
	FindByID(ctx context.Context, id uint) (*domain.Benefit, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, row *domain.Benefit) error
	Update(ctx context.Context, row *domain.Benefit, expectedVersion int64) (int64, error)
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
	return crud.Key{"benefit_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Benefit, error) {
	return crud.List[domain.Benefit](ctx, r.db)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Benefit, error) {
	return crud.Get[domain.Benefit](ctx, r.db, key(id))
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Benefit](ctx, r.db, key(id))
}

func (r *repository) Create(ctx context.Context, row *domain.Benefit) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.Benefit, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.BenefitID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Benefit](ctx, r.db, key(id))
}
