package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ListAttendance 获取考勤列表
// GET /api/v1/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	items, err := h.attendanceSvc.List(c.Request.Context())
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// GetAttendance 获取考勤详情
// GET /api/v1/attendance/:id
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.attendanceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateAttendance 新增考勤
// POST /api/v1/attendance
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.attendanceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateAttendance 更新考勤
// PUT /api/v1/attendance/:id
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.attendanceSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteAttendance 删除考勤
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.attendanceSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}
	response.OK(c, result)
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, response.CodeNotFound, "考勤记录不存在")
	default:
		handleCommonError(c, err)
	}
}
