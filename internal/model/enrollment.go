package model

import "time"

// Enrollment 选课表：对应 enrollment，(student_id, course_id) 为复合主键
type Enrollment struct {
	StudentID      int64     `gorm:"column:student_id;primaryKey"     json:"student_id"`
	CourseID       int64     `gorm:"column:course_id;primaryKey"      json:"course_id"`
	DepartmentID   int64     `gorm:"column:department_id"             json:"department_id"`
	EnrollmentDate time.Time `gorm:"column:enrollment_date;type:date" json:"enrollment_date"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollment" }
