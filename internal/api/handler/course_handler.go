package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
// 课程以 (department_id, course_id) 定位
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 获取课程列表
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, gin.H{"list": courses})
}

// GetCourse 获取课程详情
// GET /api/v1/courses/:department_id/:course_id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	deptID, courseID, ok := courseKey(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.Get(c.Request.Context(), deptID, courseID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, course)
}

// CreateCourse 新增课程
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateCourse 课程改名
// PUT /api/v1/courses/:department_id/:course_id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	deptID, courseID, ok := courseKey(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), deptID, courseID, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:department_id/:course_id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	deptID, courseID, ok := courseKey(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.Delete(c.Request.Context(), deptID, courseID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}
	response.OK(c, result)
}

func courseKey(c *gin.Context) (int64, int64, bool) {
	deptID, ok := MustParseID(c, "department_id")
	if !ok {
		return 0, 0, false
	}
	courseID, ok := MustParseID(c, "course_id")
	if !ok {
		return 0, 0, false
	}
	return deptID, courseID, true
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, response.CodeNotFound, "课程不存在")
	default:
		handleCommonError(c, err)
	}
}
