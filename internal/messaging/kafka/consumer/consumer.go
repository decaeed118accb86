package consumer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bruno-marques98/CoreCrewApp/internal/auditlog"
	"github.com/bruno-marques98/CoreCrewApp/internal/events"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/apperror"
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/request"

	"github.com/gin-gonic/gin/binding"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type AuditRecorder interface {
	Create(ctx context.Context, req auditlog.AuditLogRequest) (auditlog.AuditLogResponse, error)
}

// ConsumeAuditEvents stores every audit event as an audit_logs row until ctx
// is cancelled. Malformed messages are committed and skipped; transient
// store failures leave the offset uncommitted.
func ConsumeAuditEvents(
	ctx context.Context,
	reader MessageReader,
	recorder AuditRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit")
	log.Info("audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, recorder, msg, log)
	}
}

func handleMessage(ctx context.Context, reader MessageReader, recorder AuditRecorder, msg kafkago.Message, log *zap.Logger) {
	fields := []zap.Field{zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset)}

	var event events.AuditRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Warn("decode audit event failed, skipping", append(fields, zap.Error(err))...)
		commit(ctx, reader, msg, log)
		return
	}
	if err := event.Validate(); err != nil {
		log.Warn("invalid audit event, skipping", append(fields, zap.Error(err))...)
		commit(ctx, reader, msg, log)
		return
	}

	req := toAuditLogRequest(event)
	if err := binding.Validator.ValidateStruct(req); err != nil {
		log.Warn("audit event fails validation, skipping", append(fields, zap.Error(err))...)
		commit(ctx, reader, msg, log)
		return
	}

	created, err := recorder.Create(ctx, req)
	if err != nil {
		if apperror.ToHTTP(err).Status < http.StatusInternalServerError {
			log.Warn("audit event rejected, skipping", append(fields, zap.Error(err))...)
			commit(ctx, reader, msg, log)
			return
		}
		log.Error("store audit event failed", append(fields, zap.Error(err))...)
		return
	}

	if !commit(ctx, reader, msg, log) {
		return
	}

	log.Info("audit event stored",
		zap.Uint("audit_log_id", created.AuditLogID),
		zap.String("action", event.Action),
		zap.String("table_name", event.TableName),
	)
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit audit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return false
	}
	return true
}

func toAuditLogRequest(event events.AuditRecordedEvent) auditlog.AuditLogRequest {
	req := auditlog.AuditLogRequest{
		Action:    event.Action,
		TableName: event.TableName,
		RecordID:  event.RecordID,
		UserName:  event.UserName,
	}
	if !event.OccurredAt.IsZero() {
		ts := request.FormatTimestamp(event.OccurredAt)
		req.Timestamp = &ts
	}
	if event.Details != "" {
		details := event.Details
		req.Details = &details
	}
	return req
}
