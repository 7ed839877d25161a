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

var ErrMarkNotFound = errors.New("成绩记录不存在")

// MarkService 成绩业务接口
type MarkService interface {
	Create(ctx context.Context, req *dto.CreateMarkRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MarkResponse, error)
	List(ctx context.Context) ([]dto.MarkResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMarkRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

type markService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewMarkService 创建 MarkService 实例
func NewMarkService(repo *repository.Repository, auditLimit int, logger *zap.Logger) MarkService {
	return &markService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *markService) Create(ctx context.Context, req *dto.CreateMarkRequest) (*dto.MutationResponse, error) {
	switch {
	case req.StudentID == 0:
		return nil, requiredError("student_id")
	case req.CourseID == 0:
		return nil, requiredError("course_id")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	case req.MarkValue == nil:
		return nil, requiredError("mark_value")
	}

	m := &model.Mark{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		DepartmentID: req.DepartmentID,
		MarkValue:    *req.MarkValue,
	}
	if err := s.repo.Mark.Create(ctx, m); err != nil {
		logDBError(s.logger, "录入成绩失败", err,
			zap.Int64("student_id", req.StudentID), zap.Int64("course_id", req.CourseID))
		return nil, err
	}
	return s.afterMutation(ctx, ptrInt64(m.MarkID))
}

func (s *markService) GetByID(ctx context.Context, id int64) (*dto.MarkResponse, error) {
	m, err := s.repo.Mark.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarkNotFound
		}
		s.logger.Error("查询成绩失败", zap.Int64("mark_id", id), zap.Error(err))
		return nil, err
	}
	resp := toMarkResponse(m)
	return &resp, nil
}

func (s *markService) List(ctx context.Context) ([]dto.MarkResponse, error) {
	list, err := s.repo.Mark.List(ctx)
	if err != nil {
		s.logger.Error("列出成绩失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.MarkResponse, 0, len(list))
	for i := range list {
		result = append(result, toMarkResponse(&list[i]))
	}
	return result, nil
}

func (s *markService) Update(ctx context.Context, id int64, req *dto.UpdateMarkRequest) (*dto.MutationResponse, error) {
	if req.MarkValue == nil {
		return nil, requiredError("mark_value")
	}

	m := &model.Mark{MarkID: id, MarkValue: *req.MarkValue}
	if err := s.repo.Mark.Update(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarkNotFound
		}
		logDBError(s.logger, "修改成绩失败", err, zap.Int64("mark_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

func (s *markService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if err := s.repo.Mark.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarkNotFound
		}
		logDBError(s.logger, "删除成绩失败", err, zap.Int64("mark_id", id))
		return nil, err
	}
	return s.afterMutation(ctx, nil)
}

func (s *markService) afterMutation(ctx context.Context, id *int64) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, id, list)
}

func toMarkResponse(m *model.Mark) dto.MarkResponse {
	return dto.MarkResponse{
		MarkID:       m.MarkID,
		StudentID:    m.StudentID,
		CourseID:     m.CourseID,
		DepartmentID: m.DepartmentID,
		MarkValue:    m.MarkValue,
	}
}
