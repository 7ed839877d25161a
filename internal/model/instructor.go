package model

// Instructor 教师表：对应 instructor
type Instructor struct {
	InstructorID int64  `gorm:"column:instructor_id;primaryKey" json:"instructor_id"`
	FirstName    string `gorm:"column:first_name"               json:"first_name"`
	LastName     string `gorm:"column:last_name"                json:"last_name"`
	Rank         string `gorm:"column:rank"                     json:"rank"`
	DepartmentID int64  `gorm:"column:department_id"            json:"department_id"`
}

// TableName 指定表名
func (Instructor) TableName() string { return "instructor" }
