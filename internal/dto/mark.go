package dto

// ── 成绩模块 DTO ──

// CreateMarkRequest 录入成绩请求
// mark_value 不做范围校验，取值约束交给数据库
type CreateMarkRequest struct {
	StudentID    int64    `json:"student_id"`
	CourseID     int64    `json:"course_id"`
	DepartmentID int64    `json:"department_id"`
	MarkValue    *float64 `json:"mark_value"`
}

// UpdateMarkRequest 修改分数
type UpdateMarkRequest struct {
	MarkValue *float64 `json:"mark_value"`
}

// MarkResponse 成绩信息响应
type MarkResponse struct {
	MarkID       int64   `json:"mark_id"`
	StudentID    int64   `json:"student_id"`
	CourseID     int64   `json:"course_id"`
	DepartmentID int64   `json:"department_id"`
	MarkValue    float64 `json:"mark_value"`
}
