package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uniadmin/internal/dto"
	"uniadmin/internal/model"
	pkgerrors "uniadmin/pkg/errors"
)

// ────────────────────── 学生 Excel 导入 ──────────────────────

const maxImportRows = 1000

var (
	ErrImportNoData      = errors.New("Excel文件无数据行（第一行为表头）")
	ErrImportTooManyRows = fmt.Errorf("数据行数超过上限 %d 行", maxImportRows)
	ErrImportBadHeader   = errors.New("Excel表头缺少必要列（学号/名/姓）")
	ErrImportBadFile     = errors.New("无法解析Excel文件")
)

// importColumns 表头别名 -> 字段
var importColumns = map[string]string{
	"学号": "student_id", "student_id": "student_id",
	"名": "first_name", "first_name": "first_name",
	"姓": "last_name", "last_name": "last_name",
	"出生日期": "dob", "dob": "dob",
	"城市": "city", "city": "city",
	"班级": "academic_group", "academic_group": "academic_group",
	"专业方向": "section", "section": "section",
}

type importRow struct {
	Row int
	Req dto.CreateStudentRequest
	Err string
}

// Import 逐行插入：每行一条语句、一个事务，失败行记录驱动原文后继续
func (s *studentService) Import(ctx context.Context, reader io.Reader) (*dto.ImportStudentResponse, error) {
	rows, err := parseStudentSheet(reader)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportStudentResponse{Total: len(rows)}
	for _, row := range rows {
		if row.Err != "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{Row: row.Row, Reason: row.Err})
			continue
		}
		if err := s.insertImported(ctx, &row.Req); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{Row: row.Row, Reason: pkgerrors.Detail(err)})
			continue
		}
		resp.Success++
	}

	s.logger.Info("学生导入完成",
		zap.Int("total", resp.Total),
		zap.Int("success", resp.Success),
		zap.Int("failed", resp.Failed),
	)

	mutation, err := s.afterMutation(ctx)
	if err != nil {
		return nil, err
	}
	resp.List, _ = mutation.List.([]dto.StudentResponse)
	resp.Audit = mutation.Audit
	return resp, nil
}

func (s *studentService) insertImported(ctx context.Context, req *dto.CreateStudentRequest) error {
	switch {
	case req.StudentID == 0:
		return requiredError("student_id")
	case blank(req.FirstName):
		return requiredError("first_name")
	case blank(req.LastName):
		return requiredError("last_name")
	}
	dob, err := parseDate(req.DOB)
	if err != nil {
		return err
	}

	err = s.repo.Student.Create(ctx, &model.Student{
		StudentID:     req.StudentID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		DOB:           dob,
		City:          optionalString(req.City),
		AcademicGroup: optionalString(req.AcademicGroup),
		Section:       optionalString(req.Section),
	})
	if err != nil {
		logDBError(s.logger, "导入学生失败", err, zap.Int64("student_id", req.StudentID))
	}
	return err
}

// parseStudentSheet 读取第一个工作表，第一行为表头，列序不限
func parseStudentSheet(reader io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportBadFile, err)
	}
	defer f.Close()

	excelRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportBadFile, err)
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	colIndex := parseHeaderIndex(excelRows[0])
	for _, field := range []string{"student_id", "first_name", "last_name"} {
		if _, ok := colIndex[field]; !ok {
			return nil, ErrImportBadHeader
		}
	}

	var rows []importRow
	for i := 1; i < len(excelRows); i++ {
		cells := make(map[string]string, len(colIndex))
		empty := true
		for field, idx := range colIndex {
			if idx < len(excelRows[i]) {
				cells[field] = strings.TrimSpace(excelRows[i][idx])
				if cells[field] != "" {
					empty = false
				}
			}
		}
		// 跳过全空行
		if empty {
			continue
		}

		item := importRow{Row: i + 1, Req: dto.CreateStudentRequest{
			FirstName:     cells["first_name"],
			LastName:      cells["last_name"],
			DOB:           cells["dob"],
			City:          cells["city"],
			AcademicGroup: cells["academic_group"],
			Section:       cells["section"],
		}}
		if raw := cells["student_id"]; raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				item.Err = fmt.Sprintf("学号无效: %s", raw)
			}
			item.Req.StudentID = id
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

// parseHeaderIndex 解析表头，返回字段 -> 列索引（缺失的列不在结果中）
func parseHeaderIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		if field, ok := importColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			idx[field] = i
		}
	}
	return idx
}
