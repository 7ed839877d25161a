package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"uniadmin/internal/dto"
	"uniadmin/internal/service"
	"uniadmin/pkg/response"
)

// ReservationHandler 教室预约模块 HTTP 处理器
type ReservationHandler struct {
	reservationSvc service.ReservationService
}

// NewReservationHandler 创建 ReservationHandler
func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

// ListReservations 获取教室预约列表
// GET /api/v1/reservations
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	items, err := h.reservationSvc.List(c.Request.Context())
	if err != nil {
		h.handleReservationError(c, err)
		return
	}
	response.OK(c, gin.H{"list": items})
}

// GetReservation 获取教室预约详情
// GET /api/v1/reservations/:id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.reservationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateReservation 新增教室预约
// POST /api/v1/reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.reservationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateReservation 更新教室预约
// PUT /api/v1/reservations/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.reservationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteReservation 删除教室预约
// DELETE /api/v1/reservations/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := MustParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.reservationSvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}
	response.OK(c, result)
}

// handleReservationError 统一处理教室预约模块业务错误
func (h *ReservationHandler) handleReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		response.NotFound(c, response.CodeNotFound, "预约不存在")
	default:
		handleCommonError(c, err)
	}
}
