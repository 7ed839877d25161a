package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// InstructorHandler 教师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
}

// NewInstructorHandler 创建 InstructorHandler
func NewInstructorHandler(instructorSvc service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc}
}

// ListInstructors 获取教师列表
// GET /api/v1/instructors
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	items, err := h.instructorSvc.List(c.Request.Context())
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// GetInstructor 获取教师详情
// GET /api/v1/instructors/:id
func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.instructorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateInstructor 新增教师
// POST /api/v1/instructors
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.instructorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateInstructor 更新教师
// PUT /api/v1/instructors/:id
func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.instructorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteInstructor 删除教师
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.instructorSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleInstructorError(c, err)
		return
	}
	response.OK(c, result)
}

// handleInstructorError 统一处理教师模块业务错误
func (h *InstructorHandler) handleInstructorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInstructorNotFound):
		response.NotFound(c, response.CodeNotFound, "教师不存在")
	default:
		handleCommonError(c, err)
	}
}
