package setting

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=setting_repo.go -destination=mock/setting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Setting, error)
	FindByID(ctx context.Context, id uint) (*domain.Setting, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, row *domain.Setting) error
	Update(ctx context.Context, row *domain.Setting, expectedVersion int64) (int64, error)
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
	return crud.Key{"setting_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Setting, error) {
	return crud.List[domain.Setting](ctx, r.db)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Setting, error) {
	return crud.Get[domain.Setting](ctx, r.db, key(id))
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Setting](ctx, r.db, key(id))
}

func (r *repository) Create(ctx context.Context, row *domain.Setting) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.Setting, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.SettingID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Setting](ctx, r.db, key(id))
}
