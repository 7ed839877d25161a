package dto

// ── 考勤模块 DTO ──

// CreateAttendanceRequest 新增考勤请求
// status 取值（Present / Absent / Late）由数据库 CHECK 约束校验
type CreateAttendanceRequest struct {
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	AttendanceDate string `json:"attendance_date" binding:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status"          binding:"max=10"`
}

// UpdateAttendanceRequest 修改考勤日期与状态
type UpdateAttendanceRequest struct {
	AttendanceDate string `json:"attendance_date" binding:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status"          binding:"max=10"`
}

// AttendanceResponse 考勤信息响应
type AttendanceResponse struct {
	AttendanceID   int64  `json:"attendance_id"`
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}
