package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// EnrollmentHandler 选课模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// ListEnrollments 获取选课列表
// GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	items, err := h.enrollmentSvc.List(c.Request.Context())
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// GetEnrollment 获取选课记录
// GET /api/v1/enrollments/:student_id/:course_id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	studentID, courseID, ok := enrollmentKey(c)
	if !ok {
		return
	}

	item, err := h.enrollmentSvc.Get(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateEnrollment 新增选课
// POST /api/v1/enrollments
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateEnrollment 更新选课的院系与日期
// PUT /api/v1/enrollments/:student_id/:course_id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	studentID, courseID, ok := enrollmentKey(c)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.enrollmentSvc.Update(c.Request.Context(), studentID, courseID, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteEnrollment 退选
// DELETE /api/v1/enrollments/:student_id/:course_id
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	studentID, courseID, ok := enrollmentKey(c)
	if !ok {
		return
	}

	result, err := h.enrollmentSvc.Delete(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}
	response.OK(c, result)
}

func enrollmentKey(c *gin.Context) (int64, int64, bool) {
	studentID, ok := MustParseID(c, "student_id")
	if !ok {
		return 0, 0, false
	}
	courseID, ok := MustParseID(c, "course_id")
	if !ok {
		return 0, 0, false
	}
	return studentID, courseID, true
}

func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, response.CodeNotFound, "选课记录不存在")
	default:
		handleCommonError(c, err)
	}
}
