package model

import "time"

// AuditLog 审计日志：对应 student_audit_log，仅由数据库触发器写入
type AuditLog struct {
	AuditID     int64     `gorm:"column:audit_id;primaryKey" json:"audit_id"`
	Operation   string    `gorm:"column:operation"           json:"operation"`
	Timestamp   time.Time `gorm:"column:timestamp"           json:"timestamp"`
	User        string    `gorm:"column:user"                json:"user"`
	Description *string   `gorm:"column:description"         json:"description,omitempty"`
}

// TableName 指定表名
func (AuditLog) TableName() string { return "student_audit_log" }
