package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	"uniadmin/internal/repository"
)

// ── 报表模块业务错误 ──

var (
	ErrReportNotFound      = errors.New("报表不存在")
	ErrReportParamRequired = errors.New("该报表需要参数")
)

// reportDefinition 固定报表定义；paramName 非空时 query 含一个占位符
// usesPass 为 true 时在末尾追加及格线参数
type reportDefinition struct {
	name      string
	title     string
	paramName string
	usesPass  bool
	query     string
}

// reportCatalog 报表目录，顺序即展示顺序
var reportCatalog = []reportDefinition{
	{
		name:      "students_by_group",
		title:     "按班级查询学生",
		paramName: "group",
		query:     `SELECT * FROM get_students_by_group(?)`,
	},
	{
		name:      "students_by_section",
		title:     "按专业方向查询学生",
		paramName: "section",
		query:     `SELECT * FROM get_students_by_section(?)`,
	},
	{
		name:     "failing_students",
		title:    "不及格学生",
		usesPass: true,
		query:    `SELECT * FROM get_failing_students(?)`,
	},
	{
		name:     "resit_students",
		title:    "可参加补考学生",
		usesPass: true,
		query:    `SELECT * FROM get_resit_students(?)`,
	},
	{
		name:  "excluded_students",
		title: "因缺勤取消考试资格学生",
		query: `SELECT * FROM get_excluded_students()`,
	},
	{
		name:  "course_enrollment",
		title: "课程选课人数",
		query: `SELECT c.course_id, c.department_id, c.name AS course_name, COUNT(e.student_id) AS enrolled
			FROM course c
			LEFT JOIN enrollment e ON e.course_id = c.course_id AND e.department_id = c.department_id
			GROUP BY c.course_id, c.department_id, c.name
			ORDER BY enrolled DESC, c.course_id`,
	},
	{
		name:  "room_usage",
		title: "教室预约时长",
		query: `SELECT r.building, r.roomno, r.capacity,
				COUNT(res.reservation_id) AS reservations,
				COALESCE(SUM(res.hours_number), 0) AS reserved_hours
			FROM room r
			LEFT JOIN reservation res ON res.building = r.building AND res.roomno = r.roomno
			GROUP BY r.building, r.roomno, r.capacity
			ORDER BY reserved_hours DESC, r.building, r.roomno`,
	},
	{
		name:  "attendance_summary",
		title: "学生考勤汇总",
		query: `SELECT s.student_id, s.first_name, s.last_name,
				COUNT(a.attendance_id) FILTER (WHERE a.status = 'Present') AS present,
				COUNT(a.attendance_id) FILTER (WHERE a.status = 'Absent') AS absent,
				COUNT(a.attendance_id) FILTER (WHERE a.status = 'Late') AS late
			FROM student s
			LEFT JOIN attendance a ON a.student_id = s.student_id
			GROUP BY s.student_id, s.first_name, s.last_name
			ORDER BY s.student_id`,
	},
	{
		name:  "instructor_load",
		title: "教师授课时长",
		query: `SELECT i.instructor_id, i.first_name, i.last_name, i.rank,
				COUNT(res.reservation_id) AS reservations,
				COALESCE(SUM(res.hours_number), 0) AS reserved_hours
			FROM instructor i
			LEFT JOIN reservation res ON res.instructor_id = i.instructor_id
			GROUP BY i.instructor_id, i.first_name, i.last_name, i.rank
			ORDER BY reserved_hours DESC, i.instructor_id`,
	},
}

// ReportService 报表业务接口
type ReportService interface {
	// Catalog 返回全部可用报表
	Catalog() []dto.ReportDefinitionResponse
	// Run 执行指定报表，列结构由结果集决定
	Run(ctx context.Context, name, param string) (*dto.ReportResultResponse, error)
}

type reportService struct {
	repo      *repository.Repository
	index     map[string]*reportDefinition
	threshold float64
	logger    *zap.Logger
}

// NewReportService 创建 ReportService 实例，threshold 与成绩判定共用同一及格线
func NewReportService(repo *repository.Repository, threshold float64, logger *zap.Logger) ReportService {
	index := make(map[string]*reportDefinition, len(reportCatalog))
	for i := range reportCatalog {
		index[reportCatalog[i].name] = &reportCatalog[i]
	}
	return &reportService{repo: repo, index: index, threshold: threshold, logger: logger}
}

func (s *reportService) Catalog() []dto.ReportDefinitionResponse {
	result := make([]dto.ReportDefinitionResponse, 0, len(reportCatalog))
	for _, def := range reportCatalog {
		result = append(result, dto.ReportDefinitionResponse{
			Name:      def.name,
			Title:     def.title,
			ParamName: def.paramName,
		})
	}
	return result
}

func (s *reportService) Run(ctx context.Context, name, param string) (*dto.ReportResultResponse, error) {
	def, ok := s.index[name]
	if !ok {
		return nil, ErrReportNotFound
	}

	var args []interface{}
	if def.paramName != "" {
		if blank(param) {
			return nil, ErrReportParamRequired
		}
		args = append(args, param)
	}
	if def.usesPass {
		args = append(args, s.threshold)
	}

	set, err := s.repo.Report.Run(ctx, def.query, args...)
	if err != nil {
		logDBError(s.logger, "执行报表失败", err, zap.String("report", name))
		return nil, err
	}

	return &dto.ReportResultResponse{
		Name:    def.name,
		Title:   def.title,
		Columns: set.Columns,
		Rows:    set.Rows,
	}, nil
}
