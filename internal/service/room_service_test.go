package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"uniadmin/internal/dto"
	pkgerrors "uniadmin/pkg/errors"
)

func setupTestRoomService() (RoomService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewRoomService(repo, 50, zap.NewNop()), mocks
}

func intPtr(v int) *int { return &v }

func TestRoomService_Create_ThenList(t *testing.T) {
	svc, _ := setupTestRoomService()

	result, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Building: "C", RoomNo: "201", Capacity: intPtr(40)})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	list := result.List.([]dto.RoomResponse)
	if len(list) != 1 || list[0].Building != "C" || list[0].RoomNo != "201" || list[0].Capacity != 40 {
		t.Errorf("列表行与写入不一致: %+v", list)
	}
	if len(result.Audit) != 1 || result.Audit[0].Operation != "INSERT" {
		t.Errorf("期望 1 条 INSERT 审计记录，实际: %+v", result.Audit)
	}
}

func TestRoomService_Create_RequiredFields(t *testing.T) {
	svc, mocks := setupTestRoomService()

	tests := []struct {
		name  string
		req   dto.CreateRoomRequest
		field string
	}{
		{"缺少楼栋", dto.CreateRoomRequest{RoomNo: "1", Capacity: intPtr(10)}, "building"},
		{"缺少房间号", dto.CreateRoomRequest{Building: "A", Capacity: intPtr(10)}, "roomno"},
		{"缺少容量", dto.CreateRoomRequest{Building: "A", RoomNo: "1"}, "capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, ErrRequiredField) {
				t.Fatalf("期望 ErrRequiredField，实际: %v", err)
			}
			if want := requiredError(tt.field).Error(); err.Error() != want {
				t.Errorf("期望 %q，实际 %q", want, err.Error())
			}
		})
	}

	if len(mocks.room.rooms) != 0 || len(mocks.audit.logs) != 0 {
		t.Error("必填校验失败时不应访问数据库")
	}
}

func TestRoomService_Create_ZeroCapacityAllowed(t *testing.T) {
	svc, mocks := setupTestRoomService()

	if _, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Building: "A", RoomNo: "0", Capacity: intPtr(0)}); err != nil {
		t.Fatalf("显式容量 0 应允许写入: %v", err)
	}
	if mocks.room.rooms[roomKey("A", "0")].Capacity != 0 {
		t.Error("容量应为 0")
	}
}

func TestRoomService_Update_MissingCapacityKeepsStored(t *testing.T) {
	svc, mocks := setupTestRoomService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateRoomRequest{Building: "A", RoomNo: "101", Capacity: intPtr(30)}); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	var req dto.UpdateRoomRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("解析请求体失败: %v", err)
	}

	_, err := svc.Update(ctx, "A", "101", &req)
	if !errors.Is(err, ErrRequiredField) {
		t.Fatalf("缺少 capacity 应返回 ErrRequiredField，实际: %v", err)
	}
	if len(mocks.room.updates) != 0 {
		t.Errorf("不应执行 UPDATE，实际写入容量 %v", mocks.room.updates)
	}

	got, err := svc.Get(ctx, "A", "101")
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if got.Capacity != 30 {
		t.Errorf("原容量应保持 30，实际 %d", got.Capacity)
	}
}

func TestRoomService_Update(t *testing.T) {
	svc, mocks := setupTestRoomService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateRoomRequest{Building: "A", RoomNo: "101", Capacity: intPtr(30)}); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	result, err := svc.Update(ctx, "A", "101", &dto.UpdateRoomRequest{Capacity: intPtr(45)})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if list := result.List.([]dto.RoomResponse); list[0].Capacity != 45 {
		t.Errorf("期望容量 45，实际 %d", list[0].Capacity)
	}
	if len(mocks.room.updates) != 1 || mocks.room.updates[0] != 45 {
		t.Errorf("UPDATE 写入容量不正确: %v", mocks.room.updates)
	}
	if result.Audit[0].Operation != "UPDATE" {
		t.Errorf("最新审计记录应为 UPDATE，实际 %s", result.Audit[0].Operation)
	}
}

func TestRoomService_NotFound(t *testing.T) {
	svc, _ := setupTestRoomService()
	ctx := context.Background()

	if _, err := svc.Get(ctx, "Z", "1"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Get: 期望 ErrRoomNotFound，实际: %v", err)
	}
	if _, err := svc.Update(ctx, "Z", "1", &dto.UpdateRoomRequest{Capacity: intPtr(5)}); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Update: 期望 ErrRoomNotFound，实际: %v", err)
	}
	if _, err := svc.Delete(ctx, "Z", "1"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Delete: 期望 ErrRoomNotFound，实际: %v", err)
	}
}

func TestRoomService_Create_NegativeCapacityRejectedByDatabase(t *testing.T) {
	svc, _ := setupTestRoomService()

	_, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Building: "A", RoomNo: "1", Capacity: intPtr(-1)})
	if !errors.Is(err, pkgerrors.ErrCheckViolation) {
		t.Errorf("期望 ErrCheckViolation，实际: %v", err)
	}
}
