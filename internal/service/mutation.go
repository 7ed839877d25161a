package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	"uniadmin/internal/repository"
	pkgerrors "uniadmin/pkg/errors"
)

// ── 通用业务错误 ──

var (
	ErrRequiredField = errors.New("必填项不能为空")
	ErrInvalidDate   = errors.New("日期格式应为 YYYY-MM-DD")
)

// requiredError 标明缺失的字段名
func requiredError(field string) error {
	return fmt.Errorf("%w: %s", ErrRequiredField, field)
}

// ── 写后回读 ──

// refresher 写操作成功后重新查询审计日志尾部，与受影响列表一起返回
type refresher struct {
	audit repository.AuditRepository
	limit int
}

func newRefresher(audit repository.AuditRepository, limit int) *refresher {
	return &refresher{audit: audit, limit: limit}
}

func (r *refresher) respond(ctx context.Context, id *int64, list interface{}) (*dto.MutationResponse, error) {
	logs, err := r.audit.List(ctx, r.limit)
	if err != nil {
		return nil, fmt.Errorf("写入已提交，刷新审计日志失败: %w", err)
	}
	return &dto.MutationResponse{
		ID:    id,
		List:  list,
		Audit: toAuditResponses(logs),
	}, nil
}

// ── 日志 ──

// logDBError 约束类错误属于预期结果记 Warn，其余记 Error
func logDBError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	var dbErr *pkgerrors.DBError
	if errors.As(err, &dbErr) && !errors.Is(err, pkgerrors.ErrStatementFailed) {
		logger.Warn(msg, append(fields, zap.String("sqlstate", dbErr.Code))...)
		return
	}
	logger.Error(msg, fields...)
}

// ── 参数转换 ──

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// optionalString 空串映射为 NULL
func optionalString(s string) *string {
	if blank(s) {
		return nil
	}
	v := strings.TrimSpace(s)
	return &v
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// parseDate 解析 YYYY-MM-DD，空串返回 nil（由数据库默认值或 NULL 处理）
func parseDate(s string) (*time.Time, error) {
	if blank(s) {
		return nil, nil
	}
	t, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return &t, nil
}

func ptrInt64(v int64) *int64 {
	return &v
}
