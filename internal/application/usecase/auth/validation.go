// Package auth contains authentication-related use cases.
package auth

import (
	"regexp"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validateNewPassword applies the rules every new password must pass: the
// minimum length check, then equality with its confirmation.
func validateNewPassword(passwordService adapter.PasswordService, password, confirmation string) error {
	if err := passwordService.ValidatePasswordStrength(password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 6 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	if password != confirmation {
		return domainerror.NewAuthError(
			domainerror.ErrCodePasswordMismatch,
			"passwords do not match",
			domainerror.ErrPasswordMismatch,
		)
	}

	return nil
}
