package dto

// ── 选课模块 DTO ──

// CreateEnrollmentRequest 新增选课请求，enrollment_date 为空时取数据库当天日期
type CreateEnrollmentRequest struct {
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	DepartmentID   int64  `json:"department_id"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEnrollmentRequest 更新选课请求，(student_id, course_id) 取自路径
type UpdateEnrollmentRequest struct {
	DepartmentID   int64  `json:"department_id"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}

// EnrollmentResponse 选课信息响应
type EnrollmentResponse struct {
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	DepartmentID   int64  `json:"department_id"`
	EnrollmentDate string `json:"enrollment_date"`
}
