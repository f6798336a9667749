package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/fincontrol/backend/internal/application/adapter"
	"github.com/fincontrol/backend/internal/domain/entity"
	domainerror "github.com/fincontrol/backend/internal/domain/error"
	"github.com/fincontrol/backend/internal/integration/adapters"
	"github.com/fincontrol/backend/internal/integration/persistence"
	"github.com/fincontrol/backend/test/mock"
)

func newAuthFixture(t *testing.T) (adapter.UserRepository, *RegisterUserUseCase, *LoginUserUseCase) {
	t.Helper()
	userRepo := persistence.NewUserRepository(mock.NewTestDB(t))
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("test-secret")
	register := NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	login := NewLoginUserUseCase(userRepo, passwordService, tokenService)
	return userRepo, register, login
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a user with defaults and a token pair", func(t *testing.T) {
		userRepo, register, _ := newAuthFixture(t)

		output, err := register.Execute(ctx, RegisterUserInput{
			Email:    "joao@example.com",
			Name:     "Joao",
			Password: "correct-horse-battery",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.Plan != entity.PlanGratuito {
			t.Errorf("expected default plan gratuito, got %s", output.User.Plan)
		}
		if output.User.ReportType != entity.ReportTypeNenhum {
			t.Errorf("expected default report type nenhum, got %s", output.User.ReportType)
		}
		if output.User.PasswordHash == "correct-horse-battery" {
			t.Error("password must not be stored in plain text")
		}

		stored, err := userRepo.FindByEmail(ctx, "joao@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID != output.User.ID {
			t.Error("expected the user to be persisted")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, register, _ := newAuthFixture(t)

		input := RegisterUserInput{
			Email:    "joao@example.com",
			Name:     "Joao",
			Password: "correct-horse-battery",
		}
		if _, err := register.Execute(ctx, input); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := register.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		_, register, _ := newAuthFixture(t)

		_, err := register.Execute(ctx, RegisterUserInput{
			Email:    "joao@example.com",
			Name:     "Joao",
			Password: "short",
		})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens", func(t *testing.T) {
		_, register, login := newAuthFixture(t)

		if _, err := register.Execute(ctx, RegisterUserInput{
			Email:    "joao@example.com",
			Name:     "Joao",
			Password: "correct-horse-battery",
		}); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		output, err := login.Execute(ctx, LoginUserInput{
			Email:    "joao@example.com",
			Password: "correct-horse-battery",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, register, login := newAuthFixture(t)

		if _, err := register.Execute(ctx, RegisterUserInput{
			Email:    "joao@example.com",
			Name:     "Joao",
			Password: "correct-horse-battery",
		}); err != nil {
			t.Fatalf("registration failed: %v", err)
		}

		_, wrongPassErr := login.Execute(ctx, LoginUserInput{
			Email:    "joao@example.com",
			Password: "wrong-password-here",
		})
		if !errors.Is(wrongPassErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", wrongPassErr)
		}

		_, unknownErr := login.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "correct-horse-battery",
		})
		if !errors.Is(unknownErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", unknownErr)
		}

		var a, b *domainerror.AuthError
		if !errors.As(wrongPassErr, &a) || !errors.As(unknownErr, &b) {
			t.Fatal("expected AuthError for both failures")
		}
		if a.Code != b.Code || a.Message != b.Message {
			t.Error("login failures must be indistinguishable")
		}
	})
}
