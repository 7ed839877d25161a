package dto

// ── 教室模块 DTO ──

// CreateRoomRequest 新增教室请求
type CreateRoomRequest struct {
	Building string `json:"building" binding:"max=20"`
	RoomNo   string `json:"roomno"   binding:"max=10"`
	Capacity *int   `json:"capacity" binding:"omitempty,min=0"`
}

// UpdateRoomRequest 修改教室容量，capacity 必填
type UpdateRoomRequest struct {
	Capacity *int `json:"capacity" binding:"omitempty,min=0"`
}

// RoomResponse 教室信息响应
type RoomResponse struct {
	Building string `json:"building"`
	RoomNo   string `json:"roomno"`
	Capacity int    `json:"capacity"`
}
