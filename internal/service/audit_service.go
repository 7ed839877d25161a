package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uniadmin/config"
	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	"uniadmin/internal/repository"
)

// AuditService 审计日志查询接口（只读，记录由数据库触发器写入）
type AuditService interface {
	// List 按时间倒序返回最近 limit 条，limit <= 0 时取默认值，超过上限时截断
	List(ctx context.Context, limit int) ([]dto.AuditLogResponse, error)
}

type auditService struct {
	repo   *repository.Repository
	cfg    config.AuditConfig
	logger *zap.Logger
}

// NewAuditService 创建 AuditService 实例
func NewAuditService(repo *repository.Repository, cfg config.AuditConfig, logger *zap.Logger) AuditService {
	return &auditService{repo: repo, cfg: cfg, logger: logger}
}

func (s *auditService) List(ctx context.Context, limit int) ([]dto.AuditLogResponse, error) {
	limit = s.clamp(limit)

	logs, err := s.repo.Audit.List(ctx, limit)
	if err != nil {
		s.logger.Error("查询审计日志失败", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return toAuditResponses(logs), nil
}

func (s *auditService) clamp(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return limit
}

func toAuditResponses(logs []model.AuditLog) []dto.AuditLogResponse {
	result := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		result = append(result, dto.AuditLogResponse{
			AuditID:     logs[i].AuditID,
			Operation:   logs[i].Operation,
			Timestamp:   logs[i].Timestamp.Format(time.RFC3339),
			User:        logs[i].User,
			Description: stringValue(logs[i].Description),
		})
	}
	return result
}
