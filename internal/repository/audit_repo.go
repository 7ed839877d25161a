package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const sqlSelectAuditLog = `SELECT audit_id, operation, "timestamp", "user", description
	FROM student_audit_log
	ORDER BY "timestamp" DESC, audit_id DESC
	LIMIT ?`

// AuditRepository 审计日志只读访问接口（写入由数据库触发器完成）
type AuditRepository interface {
	// List 按时间倒序返回最近 limit 条
	List(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditRepo struct {
	db *gorm.DB
}

// NewAuditRepo 创建 AuditRepository 实例
func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	err := queryAll(ctx, r.db, &logs, sqlSelectAuditLog, limit)
	return logs, err
}
