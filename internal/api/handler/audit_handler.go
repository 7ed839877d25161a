package handler

import (
	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// AuditHandler 审计日志 HTTP 处理器
type AuditHandler struct {
	auditSvc service.AuditService
}

// NewAuditHandler 创建 AuditHandler
func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// ListAuditLogs 审计日志，最新在前
// GET /api/v1/audit?limit=200
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var req dto.AuditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	logs, err := h.auditSvc.List(c.Request.Context(), req.Limit)
	if err != nil {
		handleCommonError(c, err)
		return
	}
	response.OK(c, gin.H{"list": logs})
}
