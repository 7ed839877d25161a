package dto

// ── 教室预约模块 DTO ──

// ReservationRequest 新增/更新预约请求（更新时 reservation_id 取自路径）
type ReservationRequest struct {
	InstructorID int64  `json:"instructor_id"`
	CourseID     int64  `json:"course_id"`
	DepartmentID int64  `json:"department_id"`
	Building     string `json:"building"      binding:"max=20"`
	RoomNo       string `json:"roomno"        binding:"max=10"`
	ReservDate   string `json:"reserv_date"   binding:"omitempty,datetime=2006-01-02"`
	HoursNumber  int    `json:"hours_number"`
}

// ReservationResponse 预约信息响应
type ReservationResponse struct {
	ReservationID int64  `json:"reservation_id"`
	InstructorID  int64  `json:"instructor_id"`
	CourseID      int64  `json:"course_id"`
	DepartmentID  int64  `json:"department_id"`
	Building      string `json:"building"`
	RoomNo        string `json:"roomno"`
	ReservDate    string `json:"reserv_date"`
	HoursNumber   int    `json:"hours_number"`
}
