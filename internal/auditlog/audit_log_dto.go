package auditlog

// Timestamp defaults to the time of insertion when omitted.
type AuditLogRequest struct {
	AuditLogID uint    `json:"auditLogId"`
	Action     string  `json:"action" binding:"required,max=100"`
	TableName  string  `json:"tableName" binding:"required,max=100"`
	RecordID   *int64  `json:"recordId"`
	UserName   string  `json:"userName" binding:"required,max=100"`
	Timestamp  *string `json:"timestamp" binding:"omitempty,datestr"`
	Details    *string `json:"details" binding:"omitempty,max=1000"`
	Version    int64   `json:"version" binding:"gte=0"`
}

type AuditLogResponse struct {
	AuditLogID uint    `json:"auditLogId"`
	Action     string  `json:"action"`
	TableName  string  `json:"tableName"`
	RecordID   *int64  `json:"recordId"`
	UserName   string  `json:"userName"`
	Timestamp  string  `json:"timestamp"`
	Details    *string `json:"details"`
	Version    int64   `json:"version"`
}
