package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	pkgerrors "uniadmin/pkg/errors"
)

// ── 测试辅助 ──

func setupTestStudentService() (StudentService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewStudentService(repo, 50, zap.NewNop()), mocks
}

// ── Create 测试 ──

func TestStudentService_Create_ThenList(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := &dto.CreateStudentRequest{
		StudentID:     1001,
		FirstName:     "Ion",
		LastName:      "Popescu",
		DOB:           "2003-05-17",
		AcademicGroup: "1A",
	}
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	list, ok := result.List.([]dto.StudentResponse)
	if !ok {
		t.Fatalf("List 类型不正确: %T", result.List)
	}
	if len(list) != 1 {
		t.Fatalf("期望列表 1 行，实际 %d", len(list))
	}
	got := list[0]
	if got.StudentID != 1001 || got.FirstName != "Ion" || got.LastName != "Popescu" {
		t.Errorf("列表行与写入不一致: %+v", got)
	}
	if got.DOB != "2003-05-17" {
		t.Errorf("期望 DOB=2003-05-17，实际=%s", got.DOB)
	}
	if got.City != "" {
		t.Errorf("未填写的 city 应为空，实际=%s", got.City)
	}

	if len(result.Audit) != 1 || result.Audit[0].Operation != "INSERT" {
		t.Errorf("期望返回 1 条 INSERT 审计记录，实际: %+v", result.Audit)
	}
	if result.ID != nil {
		t.Error("学生使用自然键，不应回传 id")
	}
}

func TestStudentService_Create_RequiredFields(t *testing.T) {
	svc, mocks := setupTestStudentService()

	tests := []struct {
		name string
		req  dto.CreateStudentRequest
	}{
		{"缺少学号", dto.CreateStudentRequest{FirstName: "Ion", LastName: "Popescu"}},
		{"缺少名", dto.CreateStudentRequest{StudentID: 1, LastName: "Popescu"}},
		{"姓为空白", dto.CreateStudentRequest{StudentID: 1, FirstName: "Ion", LastName: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, ErrRequiredField) {
				t.Errorf("期望 ErrRequiredField，实际: %v", err)
			}
		})
	}

	if len(mocks.student.students) != 0 || len(mocks.audit.logs) != 0 {
		t.Error("必填校验失败时不应访问数据库")
	}
}

func TestStudentService_Create_InvalidDate(t *testing.T) {
	svc, _ := setupTestStudentService()

	req := &dto.CreateStudentRequest{StudentID: 1, FirstName: "Ion", LastName: "Popescu", DOB: "17/05/2003"}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

func TestStudentService_Create_DuplicateKey(t *testing.T) {
	svc, _ := setupTestStudentService()
	ctx := context.Background()

	req := &dto.CreateStudentRequest{StudentID: 7, FirstName: "Ion", LastName: "Popescu"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("首次 Create 应成功: %v", err)
	}

	_, err := svc.Create(ctx, req)
	if !errors.Is(err, pkgerrors.ErrUniqueViolation) {
		t.Fatalf("期望 ErrUniqueViolation，实际: %v", err)
	}
	if pkgerrors.Detail(err) == "" {
		t.Error("应保留驱动原文")
	}
}

// ── Delete 测试 ──

func TestStudentService_Delete_OnlyTarget(t *testing.T) {
	svc, _ := setupTestStudentService()
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		if _, err := svc.Create(ctx, &dto.CreateStudentRequest{StudentID: id, FirstName: "A", LastName: "B"}); err != nil {
			t.Fatalf("Create %d 失败: %v", id, err)
		}
	}

	result, err := svc.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	list := result.List.([]dto.StudentResponse)
	if len(list) != 2 || list[0].StudentID != 1 || list[1].StudentID != 3 {
		t.Errorf("删除后列表不正确: %+v", list)
	}
	if result.Audit[0].Operation != "DELETE" {
		t.Errorf("最新审计记录应为 DELETE，实际 %s", result.Audit[0].Operation)
	}
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	if _, err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

// ── Update / GetByID 测试 ──

func TestStudentService_Update(t *testing.T) {
	svc, _ := setupTestStudentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateStudentRequest{StudentID: 5, FirstName: "Ion", LastName: "Popescu", City: "Iasi"}); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if _, err := svc.Update(ctx, 5, &dto.UpdateStudentRequest{FirstName: "Ioan", LastName: "Popescu"}); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	got, err := svc.GetByID(ctx, 5)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.FirstName != "Ioan" {
		t.Errorf("期望 FirstName=Ioan，实际=%s", got.FirstName)
	}
	if got.City != "" {
		t.Errorf("整行覆盖后 city 应为空，实际=%s", got.City)
	}
}

func TestStudentService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	_, err := svc.Update(context.Background(), 99, &dto.UpdateStudentRequest{FirstName: "A", LastName: "B"})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestStudentService_AuditRefreshFailure(t *testing.T) {
	svc, mocks := setupTestStudentService()
	mocks.audit.err = errors.New("connection reset")

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{StudentID: 1, FirstName: "A", LastName: "B"})
	if err == nil {
		t.Fatal("刷新审计日志失败时应返回错误")
	}
	if _, ok := mocks.student.students[1]; !ok {
		t.Error("写入已提交，不应回滚")
	}
}
