package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// RoomHandler 教室模块 HTTP 处理器
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler 创建 RoomHandler
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// ListRooms 获取教室列表
// GET /api/v1/rooms
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomSvc.List(c.Request.Context())
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, gin.H{"list": rooms})
}

// GetRoom 获取教室详情
// GET /api/v1/rooms/:building/:roomno
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomSvc.Get(c.Request.Context(), c.Param("building"), c.Param("roomno"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, room)
}

// CreateRoom 新增教室
// POST /api/v1/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateRoom 修改教室容量
// PUT /api/v1/rooms/:building/:roomno
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.roomSvc.Update(c.Request.Context(), c.Param("building"), c.Param("roomno"), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteRoom 删除教室
// DELETE /api/v1/rooms/:building/:roomno
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	result, err := h.roomSvc.Delete(c.Request.Context(), c.Param("building"), c.Param("roomno"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, response.CodeNotFound, "教室不存在")
	default:
		handleCommonError(c, err)
	}
}
