// Package crud holds the GORM queries shared by every resource repository.
//
// Rows are addressed by a Key (column -> value) so the same helpers serve
// single-column and composite primary keys. Updates are conditional on the
// row's version column; callers decide what zero affected rows means.
package crud

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VersionColumn is the optimistic concurrency token present on every table.
const VersionColumn = "version"

type Key map[string]any

func List[T any](ctx context.Context, db *gorm.DB, preloads ...string) ([]T, error) {
	rows := make([]T, 0)
	err := withPreloads(db.WithContext(ctx), preloads).Find(&rows).Error
	return rows, err
}

// Get returns gorm.ErrRecordNotFound when no row matches key.
func Get[T any](ctx context.Context, db *gorm.DB, key Key, preloads ...string) (*T, error) {
	var row T
	err := withPreloads(db.WithContext(ctx), preloads).
		Where(map[string]any(key)).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Exists[T any](ctx context.Context, db *gorm.DB, key Key) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(new(T)).
		Where(map[string]any(key)).
		Count(&count).Error
	return count > 0, err
}

func Insert[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

// Replace overwrites every column of the row matching key, but only while
// its version still equals expectedVersion. row must already carry the next
// version. The returned count is 0 when the row is gone or was changed by
// someone else.
func Replace[T any](ctx context.Context, db *gorm.DB, row *T, key Key, expectedVersion int64) (int64, error) {
	res := db.WithContext(ctx).
		Model(new(T)).
		Where(map[string]any(key)).
		Where(clause.Eq{Column: clause.Column{Name: VersionColumn}, Value: expectedVersion}).
		Select("*").
		Omit(clause.Associations).
		Updates(row)
	return res.RowsAffected, res.Error
}

func Remove[T any](ctx context.Context, db *gorm.DB, key Key) (int64, error) {
	res := db.WithContext(ctx).
		Where(map[string]any(key)).
		Delete(new(T))
	return res.RowsAffected, res.Error
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}
