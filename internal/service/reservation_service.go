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

var ErrReservationNotFound = errors.New("预约不存在")

// ReservationService 教室预约业务接口
// 教师、课程、教室是否存在由数据库外键判定
type ReservationService interface {
	Create(ctx context.Context, req *dto.ReservationRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ReservationResponse, error)
	List(ctx context.Context) ([]dto.ReservationResponse, error)
	Update(ctx context.Context, id int64, req *dto.ReservationRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

type reservationService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewReservationService 创建 ReservationService 实例
func NewReservationService(repo *repository.Repository, auditLimit int, logger *zap.Logger) ReservationService {
	return &reservationService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *reservationService) Create(ctx context.Context, req *dto.ReservationRequest) (*dto.MutationResponse, error) {
	res, err := s.buildReservation(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Reservation.Create(ctx, res); err != nil {
		logDBError(s.logger, "新增预约失败", err,
			zap.Int64("instructor_id", req.InstructorID),
			zap.String("building", req.Building),
			zap.String("roomno", req.RoomNo),
		)
		return nil, err
	}

	return s.afterMutation(ctx, ptrInt64(res.ReservationID))
}

func (s *reservationService) GetByID(ctx context.Context, id int64) (*dto.ReservationResponse, error) {
	res, err := s.repo.Reservation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("查询预约失败", zap.Int64("reservation_id", id), zap.Error(err))
		return nil, err
	}
	resp := toReservationResponse(res)
	return &resp, nil
}

func (s *reservationService) List(ctx context.Context) ([]dto.ReservationResponse, error) {
	list, err := s.repo.Reservation.List(ctx)
	if err != nil {
		s.logger.Error("列出预约失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ReservationResponse, 0, len(list))
	for i := range list {
		result = append(result, toReservationResponse(&list[i]))
	}
	return result, nil
}

func (s *reservationService) Update(ctx context.Context, id int64, req *dto.ReservationRequest) (*dto.MutationResponse, error) {
	res, err := s.buildReservation(req)
	if err != nil {
		return nil, err
	}
	res.ReservationID = id

	if err := s.repo.Reservation.Update(ctx, res); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		logDBError(s.logger, "更新预约失败", err, zap.Int64("reservation_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

func (s *reservationService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		logDBError(s.logger, "删除预约失败", err, zap.Int64("reservation_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

// buildReservation 必填检查 + 日期解析
func (s *reservationService) buildReservation(req *dto.ReservationRequest) (*model.Reservation, error) {
	switch {
	case req.InstructorID == 0:
		return nil, requiredError("instructor_id")
	case req.CourseID == 0:
		return nil, requiredError("course_id")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	case blank(req.Building):
		return nil, requiredError("building")
	case blank(req.RoomNo):
		return nil, requiredError("roomno")
	case blank(req.ReservDate):
		return nil, requiredError("reserv_date")
	}

	date, err := parseDate(req.ReservDate)
	if err != nil {
		return nil, err
	}

	return &model.Reservation{
		InstructorID: req.InstructorID,
		CourseID:     req.CourseID,
		DepartmentID: req.DepartmentID,
		Building:     req.Building,
		RoomNo:       req.RoomNo,
		ReservDate:   *date,
		HoursNumber:  req.HoursNumber,
	}, nil
}

func (s *reservationService) afterMutation(ctx context.Context, id *int64) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, id, list)
}

func toReservationResponse(r *model.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ReservationID: r.ReservationID,
		InstructorID:  r.InstructorID,
		CourseID:      r.CourseID,
		DepartmentID:  r.DepartmentID,
		Building:      r.Building,
		RoomNo:        r.RoomNo,
		ReservDate:    r.ReservDate.Format(model.DateLayout),
		HoursNumber:   r.HoursNumber,
	}
}
