package main

import (
	"context"

	"github.com/bruno-marques98/CoreCrewApp/internal/app"
	"github.com/bruno-marques98/CoreCrewApp/internal/bootstrap"
	"github.com/bruno-marques98/CoreCrewApp/internal/config"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()

	// build dependency + routes
	application, err := app.BuildApp(context.Background(), cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	if err := bootstrap.StartHTTPServer(
		application.Router,
		bootstrap.DefaultServerConfig(cfg.Port),
		application.AuditLogger,
	); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
