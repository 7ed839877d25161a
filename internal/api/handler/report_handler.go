package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// ReportHandler 报表 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ListReports 报表目录
// GET /api/v1/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	response.OK(c, gin.H{"list": h.reportSvc.Catalog()})
}

// RunReport 执行报表
// GET /api/v1/reports/:name?param=xxx
func (h *ReportHandler) RunReport(c *gin.Context) {
	var req dto.ReportRunRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.reportSvc.Run(c.Request.Context(), c.Param("name"), req.Param)
	if err != nil {
		handleReportError(c, err)
		return
	}
	response.OK(c, result)
}

// handleReportError 报表与报表导出共用
func handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		response.NotFound(c, response.CodeNotFound, "报表不存在")
	case errors.Is(err, service.ErrReportParamRequired):
		response.BadRequest(c, response.CodeReportParam, err.Error())
	default:
		handleCommonError(c, err)
	}
}
