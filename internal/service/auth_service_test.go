package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"uniadmin/config"
	"uniadmin/internal/dto"
	"uniadmin/pkg/jwt"
)

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := m.entries[jti]
	return ok, m.err
}

// ── 测试辅助 ──

func setupTestAuthService(t *testing.T, blacklist TokenBlacklist) (AuthService, *jwt.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	cfg := &config.AuthConfig{
		JWTSecret:         "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:    15 * time.Minute,
		AdminUsername:     "registrar",
		AdminPasswordHash: string(hash),
	}
	mgr := jwt.NewManager(cfg)
	return NewAuthService(cfg, mgr, blacklist, zap.NewNop()), mgr
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, mgr := setupTestAuthService(t, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "registrar", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", resp.ExpiresIn)
	}

	claims, err := mgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("签发的 Token 无法解析: %v", err)
	}
	if claims.Username != "registrar" || claims.Role != jwt.RoleAdmin {
		t.Errorf("Token 声明不正确: %+v", claims)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := setupTestAuthService(t, nil)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"密码错误", dto.LoginRequest{Username: "registrar", Password: "wrong"}},
		{"用户名错误", dto.LoginRequest{Username: "root", Password: "correct-horse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), &tt.req); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
			}
		})
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_Blacklists(t *testing.T) {
	bl := newMockBlacklist()
	svc, mgr := setupTestAuthService(t, bl)
	ctx := context.Background()

	resp, _ := svc.Login(ctx, &dto.LoginRequest{Username: "registrar", Password: "correct-horse"})
	claims, _ := mgr.ParseToken(resp.AccessToken)

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout 应成功: %v", err)
	}
	ttl, ok := bl.entries[claims.ID]
	if !ok {
		t.Fatal("JTI 应加入黑名单")
	}
	if ttl <= 0 || ttl > 15*time.Minute {
		t.Errorf("黑名单 TTL 应为 Token 剩余有效期，实际 %v", ttl)
	}
}

func TestAuthService_Logout_WithoutBlacklist(t *testing.T) {
	svc, mgr := setupTestAuthService(t, nil)
	ctx := context.Background()

	resp, _ := svc.Login(ctx, &dto.LoginRequest{Username: "registrar", Password: "correct-horse"})
	claims, _ := mgr.ParseToken(resp.AccessToken)

	if err := svc.Logout(ctx, claims); err != nil {
		t.Errorf("黑名单不可用时应降级成功，实际: %v", err)
	}
}

func TestAuthService_Logout_BlacklistError(t *testing.T) {
	bl := newMockBlacklist()
	bl.err = errors.New("redis: connection refused")
	svc, mgr := setupTestAuthService(t, bl)
	ctx := context.Background()

	resp, _ := svc.Login(ctx, &dto.LoginRequest{Username: "registrar", Password: "correct-horse"})
	claims, _ := mgr.ParseToken(resp.AccessToken)

	if err := svc.Logout(ctx, claims); err == nil {
		t.Error("黑名单写入失败时应返回错误")
	}
}
