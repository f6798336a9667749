package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret")
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "joao@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "joao@example.com" {
			t.Errorf("expected email joao@example.com, got %s", claims.Email)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("expected a future expiry")
		}
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "joao@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "joao@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to fail access validation")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to fail refresh validation")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "joao@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other := NewTokenService("other-secret")
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token signed with another secret to be rejected")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-token"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})
}
