// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/pitmydoro/backend/internal/domain/valueobject"

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// EvaluateStrength scores a candidate password.
	EvaluateStrength(password string) valueobject.PasswordStrength

	// ValidatePasswordStrength returns an error when the password cannot be accepted.
	ValidatePasswordStrength(password string) error
}
