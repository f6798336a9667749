package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "correct-horse-battery" {
			t.Error("hash must differ from the plain password")
		}

		if err := service.VerifyPassword(hash, "correct-horse-battery"); err != nil {
			t.Errorf("expected matching password to verify, got %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := service.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.HashPassword("correct-horse-battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected salted hashes to differ")
		}
	})

	t.Run("strength check", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("1234567"); err == nil {
			t.Error("expected a 7 character password to be rejected")
		}
		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("expected an 8 character password to pass, got %v", err)
		}
	})
}
