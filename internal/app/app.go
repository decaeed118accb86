package app

import (
	"context"
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/bootstrap"
	"github.com/bruno-marques98/CoreCrewApp/internal/config"
	"github.com/bruno-marques98/CoreCrewApp/internal/database"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/connection"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled API process.
type App struct {
	Router      *gin.Engine
	DB          *gorm.DB
	Redis       *redis.Client
	AuditLogger bootstrap.AuditLogger
}

func BuildApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			closeDB(db)
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency replay disabled")
	}

	router, err := NewRouter(ctx, db, rdb, cfg)
	if err != nil {
		closeDB(db)
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}

	return &App{
		Router:      router,
		DB:          db,
		Redis:       rdb,
		AuditLogger: bootstrap.NewOutboxAuditLogger(kafka.NewOutboxRepository(db)),
	}, nil
}

// NewRouter migrates when configured, seeds the bootstrap admin and mounts
// every route on a fresh engine.
func NewRouter(ctx context.Context, db *gorm.DB, rdb *redis.Client, cfg config.Config) (*gin.Engine, error) {
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(zap.L()),
		middleware.BodyLimit(cfg.MaxBodyBytes),
	)
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, nil, nil)
	})

	authService, err := registerModules(router, db, rdb, cfg)
	if err != nil {
		return nil, err
	}

	if err := database.SeedAdmin(ctx, authService, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return nil, err
	}
	return router, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	closeDB(a.DB)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
