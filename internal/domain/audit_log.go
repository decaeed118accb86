package domain

import "time"

// AuditLog rows are standalone; RecordID is not a foreign key because the
// audited row may be deleted later.
type AuditLog struct {
	AuditLogID uint      `gorm:"primaryKey;autoIncrement"`
	Action     string    `gorm:"type:varchar(100);not null"`
	Table      string    `gorm:"column:table_name;type:varchar(100);not null"`
	RecordID   *int64    `gorm:"index"`
	UserName   string    `gorm:"type:varchar(100);not null"`
	Timestamp  time.Time `gorm:"not null;index"`
	Details    *string   `gorm:"type:varchar(1000)"`
	Version    int64     `gorm:"not null;default:1"`
}

func (AuditLog) TableName() string { return "audit_logs" }
