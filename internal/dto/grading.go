package dto

// ── 成绩判定 DTO ──

// GradeResponse 单条成绩判定结果
type GradeResponse struct {
	MarkID    int64   `json:"mark_id"`
	StudentID int64   `json:"student_id"`
	CourseID  int64   `json:"course_id"`
	MarkValue float64 `json:"mark_value"`
	Result    string  `json:"result"` // PASS | FAIL
}

// GradingSummary 判定汇总
type GradingSummary struct {
	Total     int     `json:"total"`
	Passed    int     `json:"passed"`
	Failed    int     `json:"failed"`
	Threshold float64 `json:"threshold"`
}

// GradingResponse 成绩判定响应
type GradingResponse struct {
	Grades  []GradeResponse `json:"grades"`
	Summary GradingSummary  `json:"summary"`
}
