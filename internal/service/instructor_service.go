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

var ErrInstructorNotFound = errors.New("教师不存在")

// InstructorService 教师业务接口
type InstructorService interface {
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.InstructorResponse, error)
	List(ctx context.Context) ([]dto.InstructorResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

type instructorService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewInstructorService 创建 InstructorService 实例
func NewInstructorService(repo *repository.Repository, auditLimit int, logger *zap.Logger) InstructorService {
	return &instructorService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.MutationResponse, error) {
	switch {
	case req.InstructorID == 0:
		return nil, requiredError("instructor_id")
	case blank(req.FirstName):
		return nil, requiredError("first_name")
	case blank(req.LastName):
		return nil, requiredError("last_name")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	}

	ins := &model.Instructor{
		InstructorID: req.InstructorID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Rank:         req.Rank,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Instructor.Create(ctx, ins); err != nil {
		logDBError(s.logger, "新增教师失败", err, zap.Int64("instructor_id", req.InstructorID))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *instructorService) GetByID(ctx context.Context, id int64) (*dto.InstructorResponse, error) {
	ins, err := s.repo.Instructor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("查询教师失败", zap.Int64("instructor_id", id), zap.Error(err))
		return nil, err
	}
	resp := toInstructorResponse(ins)
	return &resp, nil
}

func (s *instructorService) List(ctx context.Context) ([]dto.InstructorResponse, error) {
	list, err := s.repo.Instructor.List(ctx)
	if err != nil {
		s.logger.Error("列出教师失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.InstructorResponse, 0, len(list))
	for i := range list {
		result = append(result, toInstructorResponse(&list[i]))
	}
	return result, nil
}

func (s *instructorService) Update(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*dto.MutationResponse, error) {
	switch {
	case blank(req.FirstName):
		return nil, requiredError("first_name")
	case blank(req.LastName):
		return nil, requiredError("last_name")
	case req.DepartmentID == 0:
		return nil, requiredError("department_id")
	}

	ins := &model.Instructor{
		InstructorID: id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Rank:         req.Rank,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Instructor.Update(ctx, ins); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		logDBError(s.logger, "更新教师失败", err, zap.Int64("instructor_id", id))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *instructorService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if err := s.repo.Instructor.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		logDBError(s.logger, "删除教师失败", err, zap.Int64("instructor_id", id))
		return nil, err
	}
	return s.afterMutation(ctx)
}

func (s *instructorService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}

func toInstructorResponse(ins *model.Instructor) dto.InstructorResponse {
	return dto.InstructorResponse{
		InstructorID: ins.InstructorID,
		FirstName:    ins.FirstName,
		LastName:     ins.LastName,
		Rank:         ins.Rank,
		DepartmentID: ins.DepartmentID,
	}
}
