package auth

import (
	"context"
	"errors"
	"testing"

	"content-platform/internal/repository"
)

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryUserRepository())

	registered, err := svc.Register(ctx, RegisterInput{Email: " Dev@Example.com ", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", registered.Email)
	}
	if registered.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if registered.Skills == nil {
		t.Fatalf("skills not initialized")
	}

	logged, err := svc.Login(ctx, LoginInput{Email: "dev@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != registered.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryUserRepository())

	if _, err := svc.Register(ctx, RegisterInput{Email: "", Password: "supersecret"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "dev@example.com", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryUserRepository())

	if _, err := svc.Register(ctx, RegisterInput{Email: "dev@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Email: "DEV@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryUserRepository())

	if _, err := svc.Register(ctx, RegisterInput{Email: "dev@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "dev@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "supersecret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
