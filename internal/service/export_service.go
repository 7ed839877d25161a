package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uniadmin/internal/model"
	"uniadmin/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// 预约日历中每次预约的开始时刻（当天 08:00）
const reservationStartHour = 8

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response；
// 第二个返回值为建议文件名
type ExportService interface {
	// ExportReport 将报表结果导出为 Excel，表头取自结果集列名
	ExportReport(ctx context.Context, name, param string) (*bytes.Buffer, string, error)
	// ExportGrading 将成绩判定结果导出为 Excel
	ExportGrading(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportReservations 将教室预约导出为 iCalendar
	ExportReservations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	reports ReportService
	grading GradingService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(
	repo *repository.Repository,
	reports ReportService,
	grading GradingService,
	logger *zap.Logger,
) ExportService {
	return &exportService{repo: repo, reports: reports, grading: grading, logger: logger}
}

// ────────────────────── ExportReport ──────────────────────

func (s *exportService) ExportReport(ctx context.Context, name, param string) (*bytes.Buffer, string, error) {
	result, err := s.reports.Run(ctx, name, param)
	if err != nil {
		return nil, "", err
	}

	buf, err := s.writeSheet("报表", result.Title, result.Columns, result.Rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.xlsx", result.Name)
	if param != "" {
		filename = fmt.Sprintf("%s_%s.xlsx", result.Name, param)
	}
	return buf, filename, nil
}

// ────────────────────── ExportGrading ──────────────────────

func (s *exportService) ExportGrading(ctx context.Context) (*bytes.Buffer, string, error) {
	result, err := s.grading.Grade(ctx)
	if err != nil {
		return nil, "", err
	}

	header := []string{"mark_id", "student_id", "course_id", "mark_value", "result"}
	rows := make([][]interface{}, 0, len(result.Grades))
	for _, g := range result.Grades {
		rows = append(rows, []interface{}{g.MarkID, g.StudentID, g.CourseID, g.MarkValue, g.Result})
	}

	title := fmt.Sprintf("成绩判定（及格线 %g，共 %d 条，通过 %d，未通过 %d）",
		result.Summary.Threshold, result.Summary.Total, result.Summary.Passed, result.Summary.Failed)
	buf, err := s.writeSheet("成绩判定", title, header, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, "grading.xlsx", nil
}

// ────────────────────── ExportReservations ──────────────────────
//
// 每条预约生成一个 VEVENT：
//   - DTSTART 为 reserv_date 当天 08:00（UTC），时长 hours_number 小时
//   - LOCATION 为 building-roomno
//   - UID 基于 reservation_id，重复导入可覆盖同一事件

func (s *exportService) ExportReservations(ctx context.Context) (*bytes.Buffer, string, error) {
	reservations, err := s.repo.Reservation.List(ctx)
	if err != nil {
		s.logger.Error("加载预约失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uniadmin//reservations//ZH")

	stamp := time.Now().UTC()
	for i := range reservations {
		addReservationEvent(cal, &reservations[i], stamp)
	}

	return bytes.NewBufferString(cal.Serialize()), "reservations.ics", nil
}

func addReservationEvent(cal *ics.Calendar, r *model.Reservation, stamp time.Time) {
	day := r.ReservDate.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), reservationStartHour, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(r.HoursNumber) * time.Hour)

	event := cal.AddEvent(fmt.Sprintf("reservation-%d@uniadmin", r.ReservationID))
	event.SetDtStampTime(stamp)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("课程 %d（院系 %d）", r.CourseID, r.DepartmentID))
	event.SetLocation(fmt.Sprintf("%s-%s", r.Building, r.RoomNo))
	event.SetDescription(fmt.Sprintf("教师 %d，预约 %d 小时", r.InstructorID, r.HoursNumber))
}

// ── 辅助函数 ──

// writeSheet 生成单 Sheet 工作簿：第 1 行标题，第 2 行表头，之后为数据
func (s *exportService) writeSheet(sheetName, title string, header []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", title)
	if len(header) > 1 {
		f.MergeCell(sheetName, "A1", cell(colName(len(header)-1), 1))
	}

	// 表头
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
		f.SetColWidth(sheetName, colName(i), colName(i), 16)
	}
	f.SetSheetRow(sheetName, "A2", &headerRow)
	if len(header) > 0 {
		f.SetCellStyle(sheetName, "A2", cell(colName(len(header)-1), 2), headerStyle)
	}

	// 数据行
	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheetName, cell("A", i+3), &r); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+3), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
