package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 新增课程请求
type CreateCourseRequest struct {
	CourseID     int64  `json:"course_id"     binding:"omitempty,min=1"`
	DepartmentID int64  `json:"department_id" binding:"omitempty,min=1"`
	Name         string `json:"name"          binding:"max=100"`
}

// UpdateCourseRequest 课程改名请求，(course_id, department_id) 取自路径
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	CourseID     int64  `json:"course_id"`
	DepartmentID int64  `json:"department_id"`
	Name         string `json:"name"`
}
