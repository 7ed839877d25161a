package dto

// ── 教师模块 DTO ──

// CreateInstructorRequest 新增教师请求
// rank 取值（Substitute / MCB / MCA / PROF）由数据库 CHECK 约束校验
type CreateInstructorRequest struct {
	InstructorID int64  `json:"instructor_id" binding:"omitempty,min=1"`
	FirstName    string `json:"first_name"    binding:"max=50"`
	LastName     string `json:"last_name"     binding:"max=50"`
	Rank         string `json:"rank"          binding:"max=20"`
	DepartmentID int64  `json:"department_id"`
}

// UpdateInstructorRequest 更新教师请求
type UpdateInstructorRequest struct {
	FirstName    string `json:"first_name"    binding:"max=50"`
	LastName     string `json:"last_name"     binding:"max=50"`
	Rank         string `json:"rank"          binding:"max=20"`
	DepartmentID int64  `json:"department_id"`
}

// InstructorResponse 教师信息响应
type InstructorResponse struct {
	InstructorID int64  `json:"instructor_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Rank         string `json:"rank"`
	DepartmentID int64  `json:"department_id"`
}
