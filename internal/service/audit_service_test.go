package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"uniadmin/config"
)

func TestAuditService_List_NewestFirstAndClamp(t *testing.T) {
	repo, mocks := newMockRepository()
	for i := 0; i < 5; i++ {
		mocks.audit.record("INSERT", "student")
	}
	mocks.audit.record("DELETE", "student")

	svc := NewAuditService(repo, config.AuditConfig{DefaultLimit: 3, MaxLimit: 4}, zap.NewNop())
	ctx := context.Background()

	logs, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(logs) != 3 {
		t.Errorf("limit=0 应使用默认值 3，实际 %d", len(logs))
	}
	if logs[0].Operation != "DELETE" {
		t.Errorf("最新记录应排在首位，实际 %s", logs[0].Operation)
	}

	logs, _ = svc.List(ctx, 100)
	if len(logs) != 4 {
		t.Errorf("超过上限应截断为 4，实际 %d", len(logs))
	}
}
