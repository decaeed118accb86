package auditlog

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_log_repo.go -destination=mock/audit_log_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.AuditLog, error)
	FindByID(ctx context.Context, id uint) (*domain.AuditLog, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, row *domain.AuditLog) error
	Update(ctx context.Context, row *domain.AuditLog, expectedVersion int64) (int64, error)
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
	return crud.Key{"audit_log_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.AuditLog, error) {
	return crud.List[domain.AuditLog](ctx, r.db)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.AuditLog, error) {
	return crud.Get[domain.AuditLog](ctx, r.db, key(id))
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.AuditLog](ctx, r.db, key(id))
}

func (r *repository) Create(ctx context.Context, row *domain.AuditLog) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.AuditLog, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.AuditLogID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.AuditLog](ctx, r.db, key(id))
}
