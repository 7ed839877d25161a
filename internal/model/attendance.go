package model

import "time"

// Attendance 考勤表：对应 attendance
type Attendance struct {
	AttendanceID   int64     `gorm:"column:attendance_id;primaryKey"  json:"attendance_id"`
	StudentID      int64     `gorm:"column:student_id"                json:"student_id"`
	CourseID       int64     `gorm:"column:course_id"                 json:"course_id"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date" json:"attendance_date"`
	Status         string    `gorm:"column:status"                    json:"status"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }
