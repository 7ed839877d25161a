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

var ErrAttendanceNotFound = errors.New("考勤记录不存在")

// AttendanceService 考勤业务接口
type AttendanceService interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AttendanceResponse, error)
	List(ctx context.Context) ([]dto.AttendanceResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

type attendanceService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, auditLimit int, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.MutationResponse, error) {
	switch {
	case req.StudentID == 0:
		return nil, requiredError("student_id")
	case req.CourseID == 0:
		return nil, requiredError("course_id")
	case blank(req.Status):
		return nil, requiredError("status")
	}

	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		return nil, err
	}

	a := &model.Attendance{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		AttendanceDate: dateOrZero(date),
		Status:         req.Status,
	}
	if err := s.repo.Attendance.Create(ctx, a); err != nil {
		logDBError(s.logger, "新增考勤失败", err,
			zap.Int64("student_id", req.StudentID), zap.Int64("course_id", req.CourseID))
		return nil, err
	}
	return s.afterMutation(ctx, ptrInt64(a.AttendanceID))
}

func (s *attendanceService) GetByID(ctx context.Context, id int64) (*dto.AttendanceResponse, error) {
	a, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤失败", zap.Int64("attendance_id", id), zap.Error(err))
		return nil, err
	}
	resp := toAttendanceResponse(a)
	return &resp, nil
}

func (s *attendanceService) List(ctx context.Context) ([]dto.AttendanceResponse, error) {
	list, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("列出考勤失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.AttendanceResponse, 0, len(list))
	for i := range list {
		result = append(result, toAttendanceResponse(&list[i]))
	}
	return result, nil
}

func (s *attendanceService) Update(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*dto.MutationResponse, error) {
	if blank(req.Status) {
		return nil, requiredError("status")
	}

	date, err := parseDate(req.AttendanceDate)
	if err != nil {
		return nil, err
	}

	a := &model.Attendance{AttendanceID: id, AttendanceDate: dateOrZero(date), Status: req.Status}
	if err := s.repo.Attendance.Update(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		logDBError(s.logger, "更新考勤失败", err, zap.Int64("attendance_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

func (s *attendanceService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if err := s.repo.Attendance.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		logDBError(s.logger, "删除考勤失败", err, zap.Int64("attendance_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

func (s *attendanceService) afterMutation(ctx context.Context, id *int64) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, id, list)
}

func toAttendanceResponse(a *model.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		AttendanceID:   a.AttendanceID,
		StudentID:      a.StudentID,
		CourseID:       a.CourseID,
		AttendanceDate: a.AttendanceDate.Format(model.DateLayout),
		Status:         a.Status,
	}
}
