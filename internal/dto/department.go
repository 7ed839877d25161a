package dto

// ── 院系模块 DTO ──

// CreateDepartmentRequest 新增院系请求
type CreateDepartmentRequest struct {
	DepartmentID int64  `json:"department_id" binding:"omitempty,min=1"`
	Name         string `json:"name"          binding:"max=100"`
}

// UpdateDepartmentRequest 院系改名请求，department_id 不可修改
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// DepartmentResponse 院系信息响应
type DepartmentResponse struct {
	DepartmentID int64  `json:"department_id"`
	Name         string `json:"name"`
}
