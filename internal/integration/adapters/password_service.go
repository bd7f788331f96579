// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// DefaultBcryptCost is the cost factor used outside of tests.
const DefaultBcryptCost = 12

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a password service hashing with DefaultBcryptCost.
func NewPasswordService() adapter.PasswordService {
	return NewPasswordServiceWithCost(DefaultBcryptCost)
}

// NewPasswordServiceWithCost creates a password service with a custom bcrypt cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordServiceWithCost(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// EvaluateStrength scores a candidate password.
func (s *passwordService) EvaluateStrength(password string) valueobject.PasswordStrength {
	return valueobject.EvaluatePasswordStrength(password)
}

// ValidatePasswordStrength accepts any password that passes the minimum length
// check. A low score alone never rejects a password.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if !s.EvaluateStrength(password).MeetsMinimum() {
		return domainerror.ErrWeakPassword
	}
	return nil
}
