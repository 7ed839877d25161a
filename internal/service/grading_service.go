package service

import (
	"context"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	"uniadmin/internal/repository"
)

// 成绩判定结果
const (
	GradePass = "PASS"
	GradeFail = "FAIL"
)

// DefaultPassThreshold 默认及格线
const DefaultPassThreshold = 10.0

// ClassifyMark 分数 >= 及格线为 PASS，否则 FAIL
func ClassifyMark(value, threshold float64) string {
	if value >= threshold {
		return GradePass
	}
	return GradeFail
}

// GradingService 成绩判定接口，只读展示，不回写数据库
type GradingService interface {
	Grade(ctx context.Context) (*dto.GradingResponse, error)
}

type gradingService struct {
	repo      *repository.Repository
	threshold float64
	logger    *zap.Logger
}

// NewGradingService 创建 GradingService 实例
func NewGradingService(repo *repository.Repository, threshold float64, logger *zap.Logger) GradingService {
	return &gradingService{repo: repo, threshold: threshold, logger: logger}
}

func (s *gradingService) Grade(ctx context.Context) (*dto.GradingResponse, error) {
	marks, err := s.repo.Mark.List(ctx)
	if err != nil {
		s.logger.Error("加载成绩失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.GradingResponse{
		Grades:  make([]dto.GradeResponse, 0, len(marks)),
		Summary: dto.GradingSummary{Threshold: s.threshold},
	}
	for _, m := range marks {
		result := ClassifyMark(m.MarkValue, s.threshold)
		resp.Grades = append(resp.Grades, dto.GradeResponse{
			MarkID:    m.MarkID,
			StudentID: m.StudentID,
			CourseID:  m.CourseID,
			MarkValue: m.MarkValue,
			Result:    result,
		})
		if result == GradePass {
			resp.Summary.Passed++
		} else {
			resp.Summary.Failed++
		}
	}
	resp.Summary.Total = len(marks)

	return resp, nil
}
