package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	"uniadmin/internal/repository"
)

var ErrRoomNotFound = errors.New("教室不存在")

// RoomService 教室业务接口，教室以 (building, roomno) 定位
type RoomService interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.MutationResponse, error)
	Get(ctx context.Context, building, roomNo string) (*dto.RoomResponse, error)
	List(ctx context.Context) ([]dto.RoomResponse, error)
	Update(ctx context.Context, building, roomNo string, req *dto.UpdateRoomRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, building, roomNo string) (*dto.MutationResponse, error)
}

type roomService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewRoomService 创建 RoomService 实例
func NewRoomService(repo *repository.Repository, auditLimit int, logger *zap.Logger) RoomService {
	return &roomService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.MutationResponse, error) {
	if blank(req.Building) {
		return nil, requiredError("building")
	}
	if blank(req.RoomNo) {
		return nil, requiredError("roomno")
	}
	if req.Capacity == nil {
		return nil, requiredError("capacity")
	}

	room := &model.Room{Building: req.Building, RoomNo: req.RoomNo, Capacity: *req.Capacity}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		logDBError(s.logger, "新增教室失败", err,
			zap.String("building", req.Building), zap.String("roomno", req.RoomNo))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *roomService) Get(ctx context.Context, building, roomNo string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.Get(ctx, building, roomNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询教室失败", zap.String("building", building), zap.String("roomno", roomNo), zap.Error(err))
		return nil, err
	}
	return &dto.RoomResponse{Building: room.Building, RoomNo: room.RoomNo, Capacity: room.Capacity}, nil
}

func (s *roomService) List(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("列出教室失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, dto.RoomResponse{Building: r.Building, RoomNo: r.RoomNo, Capacity: r.Capacity})
	}
	return result, nil
}

func (s *roomService) Update(ctx context.Context, building, roomNo string, req *dto.UpdateRoomRequest) (*dto.MutationResponse, error) {
	if req.Capacity == nil {
		return nil, requiredError("capacity")
	}

	room := &model.Room{Building: building, RoomNo: roomNo, Capacity: *req.Capacity}
	if err := s.repo.Room.Update(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		logDBError(s.logger, "更新教室失败", err, zap.String("building", building), zap.String("roomno", roomNo))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *roomService) Delete(ctx context.Context, building, roomNo string) (*dto.MutationResponse, error) {
	if err := s.repo.Room.Delete(ctx, building, roomNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		logDBError(s.logger, "删除教室失败", err, zap.String("building", building), zap.String("roomno", roomNo))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *roomService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}
