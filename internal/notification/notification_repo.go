package notification

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/crud"

	"gorm.io/gorm"
)

var preloads = []string{"Employee"}

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]domain.Notification, error)
	FindByID(ctx context.Context, id uint) (*domain.Notification, error)
	Exists(ctx context.Context, id uint) (bool, error)
	EmployeeExists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, row *domain.Notification) error
	Update(ctx context.Context, row *domain.Notification, expectedVersion int64) (int64, error)
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
	return crud.Key{"notification_id": id}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Notification, error) {
	return crud.List[domain.Notification](ctx, r.db, preloads...)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*domain.Notification, error) {
	return crud.Get[domain.Notification](ctx, r.db, key(id), preloads...)
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Notification](ctx, r.db, key(id))
}

func (r *repository) EmployeeExists(ctx context.Context, id uint) (bool, error) {
	return crud.Exists[domain.Employee](ctx, r.db, crud.Key{"employee_id": id})
}

func (r *repository) Create(ctx context.Context, row *domain.Notification) error {
	return crud.Insert(ctx, r.db, row)
}

func (r *repository) Update(ctx context.Context, row *domain.Notification, expectedVersion int64) (int64, error) {
	return crud.Replace(ctx, r.db, row, key(row.NotificationID), expectedVersion)
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	return crud.Remove[domain.Notification](ctx, r.db, key(id))
}
