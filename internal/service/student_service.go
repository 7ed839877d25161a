package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	"uniadmin/internal/repository"
)

// ── 学生模块业务错误 ──

var ErrStudentNotFound = errors.New("学生不存在")

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.MutationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.MutationResponse, error)
	Delete(ctx context.Context, id int64) (*dto.MutationResponse, error)
	Import(ctx context.Context, reader io.Reader) (*dto.ImportStudentResponse, error)
}

type studentService struct {
	repo    *repository.Repository
	refresh *refresher
	logger  *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, auditLimit int, logger *zap.Logger) StudentService {
	return &studentService{
		repo:    repo,
		refresh: newRefresher(repo.Audit, auditLimit),
		logger:  logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.MutationResponse, error) {
	switch {
	case req.StudentID == 0:
		return nil, requiredError("student_id")
	case blank(req.FirstName):
		return nil, requiredError("first_name")
	case blank(req.LastName):
		return nil, requiredError("last_name")
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		StudentID:     req.StudentID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DOB:           dob,
		City:          optionalString(req.City),
		AcademicGroup: optionalString(req.AcademicGroup),
		Section:       optionalString(req.Section),
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		logDBError(s.logger, "新增学生失败", err, zap.Int64("student_id", req.StudentID))
		return nil, err
	}

	return s.afterMutation(ctx)
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Int64("student_id", id), zap.Error(err))
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, toStudentResponse(&students[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.MutationResponse, error) {
	switch {
	case blank(req.FirstName):
		return nil, requiredError("first_name")
	case blank(req.LastName):
		return nil, requiredError("last_name")
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		StudentID:     id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DOB:           dob,
		City:          optionalString(req.City),
		AcademicGroup: optionalString(req.AcademicGroup),
		Section:       optionalString(req.Section),
	}
	if err := s.repo.Student.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		logDBError(s.logger, "更新学生失败", err, zap.Int64("student_id", id))
		return nil, err
	}

	return s.afterMutation(ctx)
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	if id == 0 {
		return nil, requiredError("student_id")
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		logDBError(s.logger, "删除学生失败", err, zap.Int64("student_id", id))
		return nil, err
	}

	return s.afterMutation(ctx)
}

// ── 内部辅助方法 ──

func (s *studentService) afterMutation(ctx context.Context) (*dto.MutationResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh.respond(ctx, nil, list)
}

func toStudentResponse(st *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		StudentID:     st.StudentID,
		FirstName:     st.FirstName,
		LastName:      st.LastName,
		DOB:           model.FormatDate(st.DOB),
		City:          stringValue(st.City),
		AcademicGroup: stringValue(st.AcademicGroup),
		Section:       stringValue(st.Section),
	}
}
