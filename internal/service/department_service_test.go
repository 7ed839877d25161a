package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	pkgerrors "uniadmin/pkg/errors"
)

func setupTestDepartmentService() (DepartmentService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewDepartmentService(repo, 50, zap.NewNop()), mocks
}

func TestDepartmentService_Create_Success(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	result, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{DepartmentID: 2, Name: "Mathematics"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	list := result.List.([]dto.DepartmentResponse)
	if len(list) != 2 {
		t.Fatalf("期望 2 个院系，实际 %d", len(list))
	}
	if list[1].Name != "Mathematics" {
		t.Errorf("期望 Name=Mathematics，实际=%s", list[1].Name)
	}
}

func TestDepartmentService_Create_RequiredName(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	_, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{DepartmentID: 2})
	if !errors.Is(err, ErrRequiredField) {
		t.Errorf("期望 ErrRequiredField，实际: %v", err)
	}
}

func TestDepartmentService_Rename_KeepsID(t *testing.T) {
	svc, mocks := setupTestDepartmentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateDepartmentRequest{DepartmentID: 2, Name: "Physics"}); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	result, err := svc.Update(ctx, 1, &dto.UpdateDepartmentRequest{Name: "Computer Science"})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	list := result.List.([]dto.DepartmentResponse)
	if list[0].DepartmentID != 1 || list[0].Name != "Computer Science" {
		t.Errorf("改名后 id 应保持不变: %+v", list[0])
	}
	if list[1].Name != "Physics" {
		t.Errorf("其他院系不应受影响: %+v", list[1])
	}
	if mocks.audit.logs[len(mocks.audit.logs)-1].Operation != "UPDATE" {
		t.Error("期望追加 UPDATE 审计记录")
	}
}

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	if _, err := svc.GetByID(context.Background(), 42); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("期望 ErrDepartmentNotFound，实际: %v", err)
	}
}

func TestDepartmentService_Delete_Referenced(t *testing.T) {
	svc, mocks := setupTestDepartmentService()
	mocks.department.referenced[1] = true

	_, err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, pkgerrors.ErrForeignKeyViolation) {
		t.Fatalf("期望 ErrForeignKeyViolation，实际: %v", err)
	}
	if _, ok := mocks.department.depts[1]; !ok {
		t.Error("外键拒绝后院系应仍存在")
	}
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	if _, err := svc.Delete(context.Background(), 42); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("期望 ErrDepartmentNotFound，实际: %v", err)
	}
}
