package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildSheet 生成导入用工作簿
func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("写入测试工作簿失败: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("生成测试工作簿失败: %v", err)
	}
	return buf
}

func TestStudentService_Import_PerRowResult(t *testing.T) {
	svc, mocks := setupTestStudentService()

	buf := buildSheet(t, [][]interface{}{
		{"姓", "名", "学号", "班级"},
		{"Popescu", "Ion", 1001, "1A"},
		{"Ionescu", "", 1002, "1A"},
		{"", "", "", ""},
		{"Dumitru", "Ana", "abc", "1B"},
		{"Popa", "Maria", 1001, "1B"},
		{"Stan", "Elena", 1003, ""},
	})

	resp, err := svc.Import(context.Background(), buf)
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}

	if resp.Total != 5 {
		t.Errorf("全空行应被跳过，期望 total=5，实际 %d", resp.Total)
	}
	if resp.Success != 2 || resp.Failed != 3 {
		t.Errorf("期望成功 2 / 失败 3，实际 %d / %d", resp.Success, resp.Failed)
	}
	if len(mocks.student.students) != 2 {
		t.Errorf("期望写入 2 名学生，实际 %d", len(mocks.student.students))
	}
	if len(resp.List) != 2 {
		t.Errorf("返回列表应为写入后的全部学生，实际 %d 行", len(resp.List))
	}

	reasons := map[int]string{}
	for _, e := range resp.Errors {
		reasons[e.Row] = e.Reason
	}
	if !strings.Contains(reasons[3], "first_name") {
		t.Errorf("第 3 行应因缺少 first_name 失败，实际: %q", reasons[3])
	}
	if !strings.Contains(reasons[5], "学号无效") {
		t.Errorf("第 5 行应因学号无效失败，实际: %q", reasons[5])
	}
	if !strings.Contains(reasons[6], "duplicate key") {
		t.Errorf("第 6 行应返回驱动原文，实际: %q", reasons[6])
	}
}

func TestStudentService_Import_BadHeader(t *testing.T) {
	svc, _ := setupTestStudentService()

	buf := buildSheet(t, [][]interface{}{
		{"姓名", "邮箱"},
		{"Ion Popescu", "ion@example.com"},
	})
	if _, err := svc.Import(context.Background(), buf); !errors.Is(err, ErrImportBadHeader) {
		t.Errorf("期望 ErrImportBadHeader，实际: %v", err)
	}
}

func TestStudentService_Import_NoData(t *testing.T) {
	svc, _ := setupTestStudentService()

	buf := buildSheet(t, [][]interface{}{{"student_id", "first_name", "last_name"}})
	if _, err := svc.Import(context.Background(), buf); !errors.Is(err, ErrImportNoData) {
		t.Errorf("期望 ErrImportNoData，实际: %v", err)
	}
}

func TestStudentService_Import_NotExcel(t *testing.T) {
	svc, _ := setupTestStudentService()

	if _, err := svc.Import(context.Background(), strings.NewReader("not a workbook")); !errors.Is(err, ErrImportBadFile) {
		t.Errorf("期望 ErrImportBadFile，实际: %v", err)
	}
}
