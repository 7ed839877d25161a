package dto

// ── 审计日志 DTO ──

// AuditListRequest 审计日志查询参数，limit 为空时使用配置默认值
type AuditListRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// AuditLogResponse 审计记录
type AuditLogResponse struct {
	AuditID     int64  `json:"audit_id"`
	Operation   string `json:"operation"`
	Timestamp   string `json:"timestamp"`
	User        string `json:"user"`
	Description string `json:"description,omitempty"`
}
