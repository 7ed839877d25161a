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

var ErrCourseNotFound = errors.New("课程不存在")

// CourseService 课程业务接口，课程以 (course_id, department_id) 定位
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.MutationResponse, error)
	Get(ctx context.Context, departmentID, courseID int64) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Update(ctx context.Context, departmentID, courseID int64, req *dto.UpdateCourseRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, departmentID, courseID int64) (*dto.MutationResponse, error)
}

type courseService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, auditLimit int, logger *zap.Logger) CourseService {
	return &courseService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.MutationResponse, error) {
	switch {
	case req.CourseID == 0:
		return nil, requiredError("course_id")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	case blank(req.Name):
		return nil, requiredError("name")
	}

	course := &model.Course{CourseID: req.CourseID, DepartmentID: req.DepartmentID, Name: req.Name}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		logDBError(s.logger, "新增课程失败", err,
			zap.Int64("course_id", req.CourseID), zap.Int64("department_id", req.DepartmentID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *courseService) Get(ctx context.Context, departmentID, courseID int64) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.Get(ctx, courseID, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, nil
}

func (s *courseService) Update(ctx context.Context, departmentID, courseID int64, req *dto.UpdateCourseRequest) (*dto.MutationResponse, error) {
	if blank(req.Name) {
		return nil, requiredError("name")
	}

	course := &model.Course{CourseID: courseID, DepartmentID: departmentID, Name: req.Name}
	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		logDBError(s.logger, "更新课程失败", err, zap.Int64("course_id", courseID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *courseService) Delete(ctx context.Context, departmentID, courseID int64) (*dto.MutationResponse, error) {
	if err := s.repo.Course.Delete(ctx, courseID, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		logDBError(s.logger, "删除课程失败", err, zap.Int64("course_id", courseID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *courseService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	return dto.CourseResponse{CourseID: c.CourseID, DepartmentID: c.DepartmentID, Name: c.Name}
}
