package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

func TestPasswordHashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("password stored in plain text")
	}

	if err := service.VerifyPassword(hash, "correct-horse"); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	service := NewPasswordService()

	first, err := service.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	second, err := service.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if first == second {
		t.Fatal("identical hashes for the same password")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	if err := service.ValidatePasswordStrength("12345678"); err != nil {
		t.Fatalf("eight characters rejected: %v", err)
	}
	err := service.ValidatePasswordStrength("1234567")
	if !errors.Is(err, domainerror.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}
