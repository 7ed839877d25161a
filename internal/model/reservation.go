package model

import "time"

// Reservation 教室预约表：对应 reservation
type Reservation struct {
	ReservationID int64     `gorm:"column:reservation_id;primaryKey" json:"reservation_id"`
	InstructorID  int64     `gorm:"column:instructor_id"             json:"instructor_id"`
	CourseID      int64     `gorm:"column:course_id"                 json:"course_id"`
	DepartmentID  int64     `gorm:"column:department_id"             json:"department_id"`
	Building      string    `gorm:"column:building"                  json:"building"`
	RoomNo        string    `gorm:"column:roomno"                    json:"roomno"`
	ReservDate    time.Time `gorm:"column:reserv_date;type:date"     json:"reserv_date"`
	HoursNumber   int       `gorm:"column:hours_number"              json:"hours_number"`
}

// TableName 指定表名
func (Reservation) TableName() string { return "reservation" }
