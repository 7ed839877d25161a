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

// ── 院系模块业务错误 ──

var ErrDepartmentNotFound = errors.New("院系不存在")

// DepartmentService 院系业务接口
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	// Update 仅修改名称，department_id 保持不变
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.MutationResponse, error)
	// Delete 仍被教师/课程引用时由数据库外键拒绝
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

type departmentService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, auditLimit int, logger *zap.Logger) DepartmentService {
	return &departmentService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.MutationResponse, error) {
	if req.DepartmentID == 0 {
		return nil, requiredError("department_id")
	}
	if blank(req.Name) {
		return nil, requiredError("name")
	}

	dept := &model.Department{DepartmentID: req.DepartmentID, Name: req.Name}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		logDBError(s.logger, "新增院系失败", err, zap.Int64("department_id", req.DepartmentID))
		return nil, err
	}

	return s.afterMutation(ctx)
}

// ────────────────────── GetByID ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("查询院系失败", zap.Int64("department_id", id), zap.Error(err))
		return nil, err
	}
	return &dto.DepartmentResponse{DepartmentID: dept.DepartmentID, Name: dept.Name}, nil
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("列出院系失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.DepartmentResponse{
			DepartmentID: depts[i].DepartmentID,
			Name:         depts[i].Name,
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*dto.MutationResponse, error) {
	if blank(req.Name) {
		return nil, requiredError("name")
	}

	dept := &model.Department{DepartmentID: id, Name: req.Name}
	if err := s.repo.Department.Update(ctx, dept); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		logDBError(s.logger, "更新院系失败", err, zap.Int64("department_id", id))
		return nil, err
	}

	return s.afterMutation(ctx)
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if err := s.repo.Department.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		logDBError(s.logger, "删除院系失败", err, zap.Int64("department_id", id))
		return nil, err
	}

	return s.afterMutation(ctx)
}

func (s *departmentService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}
