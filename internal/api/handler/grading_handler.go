package handler

import (
	"github.com/gin-gonic/gin"

	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// GradingHandler 成绩判定 HTTP 处理器
type GradingHandler struct {
	gradingSvc service.GradingService
}

// NewGradingHandler 创建 GradingHandler
func NewGradingHandler(gradingSvc service.GradingService) *GradingHandler {
	return &GradingHandler{gradingSvc: gradingSvc}
}

// Grade 对全部成绩给出 PASS / FAIL，不回写
// GET /api/v1/grading
func (h *GradingHandler) Grade(c *gin.Context) {
	result, err := h.gradingSvc.Grade(c.Request.Context())
	if err != nil {
		handleCommonError(c, err)
		return
	}
	response.OK(c, result)
}
