package model

// Department 院系表：对应 department
type Department struct {
	DepartmentID int64  `gorm:"column:department_id;primaryKey" json:"department_id"`
	Name         string `gorm:"column:name"                     json:"name"`
}

// TableName 指定表名
func (Department) TableName() string { return "department" }
