package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 新增学生请求
// 必填项（student_id / first_name / last_name）由 service 层检查
type CreateStudentRequest struct {
	StudentID     int64  `json:"student_id"     binding:"omitempty,min=1"`
	FirstName     string `json:"first_name"     binding:"max=50"`
	LastName      string `json:"last_name"      binding:"max=50"`
	DOB           string `json:"dob"            binding:"omitempty,datetime=2006-01-02"`
	City          string `json:"city"           binding:"max=50"`
	AcademicGroup string `json:"academic_group" binding:"max=20"`
	Section       string `json:"section"        binding:"max=20"`
}

// UpdateStudentRequest 更新学生请求（整行覆盖，student_id 取自路径）
type UpdateStudentRequest struct {
	FirstName     string `json:"first_name"     binding:"max=50"`
	LastName      string `json:"last_name"      binding:"max=50"`
	DOB           string `json:"dob"            binding:"omitempty,datetime=2006-01-02"`
	City          string `json:"city"           binding:"max=50"`
	AcademicGroup string `json:"academic_group" binding:"max=20"`
	Section       string `json:"section"        binding:"max=20"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	StudentID     int64  `json:"student_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DOB           string `json:"dob,omitempty"`
	City          string `json:"city,omitempty"`
	AcademicGroup string `json:"academic_group,omitempty"`
	Section       string `json:"section,omitempty"`
}

// ImportStudentError 导入失败的行
type ImportStudentError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportStudentResponse 批量导入结果
type ImportStudentResponse struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
	Errors  []ImportStudentError `json:"errors,omitempty"`
	List    []StudentResponse    `json:"list"`
	Audit   []AuditLogResponse   `json:"audit"`
}
