package model

import "time"

// Student 学生表：对应 student
type Student struct {
	StudentID     int64      `gorm:"column:student_id;primaryKey" json:"student_id"`
	FirstName     string     `gorm:"column:first_name"            json:"first_name"`
	LastName      string     `gorm:"column:last_name"             json:"last_name"`
	DOB           *time.Time `gorm:"column:dob;type:date"         json:"dob,omitempty"`
	City          *string    `gorm:"column:city"                  json:"city,omitempty"`
	AcademicGroup *string    `gorm:"column:academic_group"        json:"academic_group,omitempty"`
	Section       *string    `gorm:"column:section"               json:"section,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "student" }
