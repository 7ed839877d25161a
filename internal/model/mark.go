package model

// Mark 成绩表：对应 marks
type Mark struct {
	MarkID       int64   `gorm:"column:mark_id;primaryKey" json:"mark_id"`
	StudentID    int64   `gorm:"column:student_id"         json:"student_id"`
	CourseID     int64   `gorm:"column:course_id"          json:"course_id"`
	DepartmentID int64   `gorm:"column:department_id"      json:"department_id"`
	MarkValue    float64 `gorm:"column:mark_value"         json:"mark_value"`
}

// TableName 指定表名
func (Mark) TableName() string { return "marks" }
