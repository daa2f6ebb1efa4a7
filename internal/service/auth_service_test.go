package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"go-job-board/internal/apperr"
	"go-job-board/internal/core/auth"
)

func newTestAuth(t *testing.T) (*AuthService, *fakeUserRepo, *fakeBlocklist, *auth.JWTer) {
	t.Helper()
	users := newFakeUserRepo()
	bl := newFakeBlocklist()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 24 * time.Hour}
	return NewAuthService(users, jwter, bl, zap.NewNop()), users, bl, jwter
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName:  "A",
		LastName:   "B",
		Email:      "a@b.com",
		Password:   "Abcdef1!",
		IsEmployer: false,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, users, _, jwter := newTestAuth(t)
	ctx := context.Background()

	if err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, err := users.FindByEmail(ctx, "a@b.com")
	if err != nil || stored == nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "Abcdef1!" {
		t.Fatal("password stored in plaintext")
	}

	token, err := svc.Login(ctx, "a@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := jwter.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UID != stored.ID {
		t.Fatalf("token uid = %q, want %q", claims.UID, stored.ID)
	}
	if claims.Role != "seeker" {
		t.Fatalf("token role = %q, want seeker", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("token has no jti")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newTestAuth(t)
	ctx := context.Background()

	if err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := svc.Register(ctx, validRegisterInput())
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("second register err = %v, want conflict", err)
	}
	if users.count() != 1 {
		t.Fatalf("user rows = %d, want 1", users.count())
	}
}

func TestRegisterRejectsInvalidFormat(t *testing.T) {
	svc, users, _, _ := newTestAuth(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "Abcdef1!"},
		{"email without tld", "a@b", "Abcdef1!"},
		{"short password", "a@b.com", "Ab1!"},
		{"no uppercase", "a@b.com", "abcdef1!"},
		{"no lowercase", "a@b.com", "ABCDEF1!"},
		{"no digit", "a@b.com", "Abcdefg!"},
		{"no symbol", "a@b.com", "Abcdefg1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegisterInput()
			in.Email = tc.email
			in.Password = tc.password
			err := svc.Register(ctx, in)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("err = %v, want validation", err)
			}
		})
	}
	if users.count() != 0 {
		t.Fatalf("user rows = %d, want 0", users.count())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuth(t)
	ctx := context.Background()

	if err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// 未知邮箱和错误密码必须返回同一条消息
	for _, tc := range []struct{ email, password string }{
		{"nobody@b.com", "Abcdef1!"},
		{"a@b.com", "WrongPass1!"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		if !apperr.Is(err, apperr.KindUnauthorized) {
			t.Fatalf("login(%s) err = %v, want unauthorized", tc.email, err)
		}
		if err.Error() != "invalid email or password" {
			t.Fatalf("login(%s) msg = %q", tc.email, err.Error())
		}
	}
}

func TestLogoutRevokesUntilExpiry(t *testing.T) {
	svc, _, bl, jwter := newTestAuth(t)
	ctx := context.Background()

	if err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := svc.Login(ctx, "a@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := jwter.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if revoked, _ := bl.IsRevoked(ctx, claims.ID); revoked {
		t.Fatal("fresh token already revoked")
	}
	if err := svc.Logout(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if revoked, _ := bl.IsRevoked(ctx, claims.ID); !revoked {
		t.Fatal("token not revoked after logout")
	}
	// 重复注销幂等
	if err := svc.Logout(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestLogoutExpiredTokenIsNoop(t *testing.T) {
	svc, _, bl, _ := newTestAuth(t)
	ctx := context.Background()

	if err := svc.Logout(ctx, "stale-jti", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("logout expired: %v", err)
	}
	if revoked, _ := bl.IsRevoked(ctx, "stale-jti"); revoked {
		t.Fatal("expired token should not be recorded")
	}
}
