package events

import (
	"errors"
	"strings"
	"time"
)

const (
	AuditTopic             = "corecrew.audit.v1"
	AuditRecordedEventType = "audit.recorded"
)

// AuditRecordedEvent becomes one audit_logs row when consumed.
type AuditRecordedEvent struct {
	EventType  string    `json:"event_type"`
	Action     string    `json:"action"`
	TableName  string    `json:"table_name"`
	RecordID   *int64    `json:"record_id,omitempty"`
	UserName   string    `json:"user_name"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewAuditRecorded(action, tableName string, recordID *int64, userName, details string) AuditRecordedEvent {
	return AuditRecordedEvent{
		EventType:  AuditRecordedEventType,
		Action:     action,
		TableName:  tableName,
		RecordID:   recordID,
		UserName:   userName,
		Details:    details,
		OccurredAt: time.Now().UTC(),
	}
}

func (e AuditRecordedEvent) Validate() error {
	if e.EventType != AuditRecordedEventType {
		return errors.New("unexpected event type: " + e.EventType)
	}
	if strings.TrimSpace(e.Action) == "" || strings.TrimSpace(e.TableName) == "" || strings.TrimSpace(e.UserName) == "" {
		return errors.New("action, table_name and user_name are required")
	}
	return nil
}
