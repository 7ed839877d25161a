package model

// Course 课程表：对应 course，(course_id, department_id) 为复合主键
type Course struct {
	CourseID     int64  `gorm:"column:course_id;primaryKey"     json:"course_id"`
	DepartmentID int64  `gorm:"column:department_id;primaryKey" json:"department_id"`
	Name         string `gorm:"column:name"                     json:"name"`
}

// TableName 指定表名
func (Course) TableName() string { return "course" }
