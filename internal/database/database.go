// Package database owns schema creation and the optional bootstrap admin.
package database

import (
	"context"
	"fmt"

	"github.com/bruno-marques98/CoreCrewApp/internal/auth"
	"github.com/bruno-marques98/CoreCrewApp/internal/domain"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models is every table the service owns, parents first.
func Models() []any {
	models := domain.Models()
	return append(models, &auth.User{}, &kafka.OutboxEvent{})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	zap.L().Named("database").Info("schema migrated", zap.Int("tables", len(Models())))
	return nil
}

type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

// SeedAdmin is a no-op unless both email and password are set.
func SeedAdmin(ctx context.Context, seeder AdminSeeder, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	created, err := seeder.EnsureAdmin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if !created {
		zap.L().Named("database").Debug("bootstrap admin already present", zap.String("email", email))
	}
	return nil
}
