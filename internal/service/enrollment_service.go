package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	"uniadmin/internal/repository"
)

var ErrEnrollmentNotFound = errors.New("选课记录不存在")

// EnrollmentService 选课业务接口，以 (student_id, course_id) 定位
// 重复选课由主键约束拒绝
type EnrollmentService interface {
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.MutationResponse, error)
	Get(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error)
	List(ctx context.Context) ([]dto.EnrollmentResponse, error)
	Update(ctx context.Context, studentID, courseID int64, req *dto.UpdateEnrollmentRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, studentID, courseID int64) (*dto.MutationResponse, error)
}

type enrollmentService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, auditLimit int, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.MutationResponse, error) {
	switch {
	case req.StudentID == 0:
		return nil, requiredError("student_id")
	case req.CourseID == 0:
		return nil, requiredError("course_id")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	}

	date, err := parseDate(req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	e := &model.Enrollment{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		DepartmentID:   req.DepartmentID,
		EnrollmentDate: dateOrZero(date),
	}
	if err := s.repo.Enrollment.Create(ctx, e); err != nil {
		logDBError(s.logger, "新增选课失败", err,
			zap.Int64("student_id", req.StudentID), zap.Int64("course_id", req.CourseID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *enrollmentService) Get(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error) {
	e, err := s.repo.Enrollment.Get(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("查询选课失败", zap.Int64("student_id", studentID), zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}
	resp := toEnrollmentResponse(e)
	return &resp, nil
}

func (s *enrollmentService) List(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	list, err := s.repo.Enrollment.List(ctx)
	if err != nil {
		s.logger.Error("列出选课失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.EnrollmentResponse, 0, len(list))
	for i := range list {
		result = append(result, toEnrollmentResponse(&list[i]))
	}
	return result, nil
}

func (s *enrollmentService) Update(ctx context.Context, studentID, courseID int64, req *dto.UpdateEnrollmentRequest) (*dto.MutationResponse, error) {
	if req.DepartmentID == 0 {
		return nil, requiredError("department_id")
	}

	date, err := parseDate(req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	e := &model.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		DepartmentID:   req.DepartmentID,
		EnrollmentDate: dateOrZero(date),
	}
	if err := s.repo.Enrollment.Update(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		logDBError(s.logger, "更新选课失败", err, zap.Int64("student_id", studentID), zap.Int64("course_id", courseID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *enrollmentService) Delete(ctx context.Context, studentID, courseID int64) (*dto.MutationResponse, error) {
	if err := s.repo.Enrollment.Delete(ctx, studentID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		logDBError(s.logger, "删除选课失败", err, zap.Int64("student_id", studentID), zap.Int64("course_id", courseID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *enrollmentService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}

func toEnrollmentResponse(e *model.Enrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		DepartmentID:   e.DepartmentID,
		EnrollmentDate: e.EnrollmentDate.Format(model.DateLayout),
	}
}

// dateOrZero nil 日期转为零值，仓储层据此使用默认值
func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
