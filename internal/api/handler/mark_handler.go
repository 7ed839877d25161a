package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// MarkHandler 成绩模块 HTTP 处理器
type MarkHandler struct {
	markSvc service.MarkService
}

// NewMarkHandler 创建 MarkHandler
func NewMarkHandler(markSvc service.MarkService) *MarkHandler {
	return &MarkHandler{markSvc: markSvc}
}

// ListMarks 获取成绩列表
// GET /api/v1/marks
func (h *MarkHandler) ListMarks(c *gin.Context) {
	items, err := h.markSvc.List(c.Request.Context())
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// GetMark 获取成绩详情
// GET /api/v1/marks/:id
func (h *MarkHandler) GetMark(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.markSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateMark 新增成绩
// POST /api/v1/marks
func (h *MarkHandler) CreateMark(c *gin.Context) {
	var req dto.CreateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.markSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateMark 更新成绩
// PUT /api/v1/marks/:id
func (h *MarkHandler) UpdateMark(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.markSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteMark 删除成绩
// DELETE /api/v1/marks/:id
func (h *MarkHandler) DeleteMark(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.markSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleMarkError(c, err)
		return
	}
	response.OK(c, result)
}

// handleMarkError 统一处理成绩模块业务错误
func (h *MarkHandler) handleMarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMarkNotFound):
		response.NotFound(c, response.CodeNotFound, "成绩记录不存在")
	default:
		handleCommonError(c, err)
	}
}
