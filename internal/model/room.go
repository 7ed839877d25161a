package model

// Room 教室表：对应 room，(building, roomno) 为复合主键
type Room struct {
	Building string `gorm:"column:building;primaryKey" json:"building"`
	RoomNo   string `gorm:"column:roomno;primaryKey"   json:"roomno"`
	Capacity int    `gorm:"column:capacity"            json:"capacity"`
}

// TableName 指定表名
func (Room) TableName() string { return "room" }
