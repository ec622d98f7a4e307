package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"swms/internal/service"
)

// ──────────────────────────────────────────────
// AUTH: REGISTRATION AND LOGIN
// ──────────────────────────────────────────────

func newAuthService(userRepo *MockUserRepository) *service.AuthService {
	return service.NewAuthService(userRepo, "test-signing-secret", "swms-test", time.Hour)
}

func TestAuth_RegisterIssuesValidToken(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	authService := newAuthService(userRepo)

	user, token, err := authService.Register(context.Background(), service.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := authService.ValidateToken(token)
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected token for user %s, got %s", user.ID, claims.UserID)
	}

	// Password must never be stored in the clear.
	stored, _ := userRepo.GetByID(context.Background(), user.ID)
	if stored.PasswordHash == "hunter22" {
		t.Error("password stored unhashed")
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	authService := newAuthService(userRepo)

	ctx := context.Background()
	req := service.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"}

	if _, _, err := authService.Register(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := authService.Register(ctx, req)
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuth_LoginRoundTrip(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	authService := newAuthService(userRepo)

	ctx := context.Background()
	registered, _, err := authService.Register(ctx, service.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := authService.Login(ctx, "asha@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestAuth_LoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	authService := newAuthService(userRepo)

	ctx := context.Background()
	if _, _, err := authService.Register(ctx, service.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, wrongPass := authService.Login(ctx, "asha@example.com", "wrong")
	_, _, unknown := authService.Login(ctx, "nobody@example.com", "hunter22")

	if !errors.Is(wrongPass, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
	// Both failures must be indistinguishable to the caller.
	if wrongPass.Error() != unknown.Error() {
		t.Error("credential failures should not reveal which field was wrong")
	}
}

func TestAuth_EmailNormalization(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	authService := newAuthService(userRepo)

	ctx := context.Background()
	if _, _, err := authService.Register(ctx, service.RegisterRequest{
		Name: "Asha", Email: "  Asha@Example.COM ", Password: "hunter22",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := authService.Login(ctx, "asha@example.com", "hunter22"); err != nil {
		t.Errorf("login with normalized email should succeed, got %v", err)
	}
}

func TestAuth_GarbageTokenRejected(t *testing.T) {
	t.Parallel()

	authService := newAuthService(NewMockUserRepository())

	if _, err := authService.ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for garbage token")
	}
}
