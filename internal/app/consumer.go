package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bruno-marques98/CoreCrewApp/internal/auditlog"
	"github.com/bruno-marques98/CoreCrewApp/internal/config"
	"github.com/bruno-marques98/CoreCrewApp/internal/events"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka/consumer"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/connection"

	"go.uber.org/zap"
)

const auditConsumerGroup = "corecrew-audit-log"

// RunConsumer turns audit events into audit_logs rows.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	auditLogRepo := auditlog.NewRepository(gormDB)
	auditLogService := auditlog.NewService(gormDB, auditLogRepo, logger)

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.AuditTopic, auditConsumerGroup)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAuditEvents(ctx, reader, auditLogService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
