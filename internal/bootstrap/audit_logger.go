package bootstrap

import (
	"context"
	"encoding/json"

	"github.com/bruno-marques98/CoreCrewApp/internal/events"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/contextutil"

	"go.uber.org/zap"
)

// AuditLog is a process level event such as startup or shutdown.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

const (
	systemUser  = "system"
	serverTable = "server"
)

// OutboxAuditLogger writes process events to the outbox so they reach the
// audit topic like every other audit record. Failures fall back to stdout.
type OutboxAuditLogger struct {
	repo     kafka.OutboxRepository
	fallback AuditLogger
	logger   *zap.Logger
}

func NewOutboxAuditLogger(repo kafka.OutboxRepository) *OutboxAuditLogger {
	return &OutboxAuditLogger{
		repo:     repo,
		fallback: NewStdoutAuditLogger(),
		logger:   zap.L().Named("bootstrap.audit"),
	}
}

func (l *OutboxAuditLogger) Log(ctx context.Context, entry AuditLog) {
	details := entry.Message
	if len(entry.Meta) > 0 {
		if meta, err := json.Marshal(entry.Meta); err == nil {
			details += " " + string(meta)
		}
	}

	payload := events.NewAuditRecorded(entry.Action, serverTable, nil, systemUser, details)
	event, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), serverTable, entry.Action, events.AuditRecordedEventType, events.AuditTopic, payload)
	if err == nil {
		err = l.repo.Create(ctx, event)
	}
	if err != nil {
		l.logger.Warn("enqueue audit event failed", zap.String("action", entry.Action), zap.Error(err))
		l.fallback.Log(ctx, entry)
	}
}
