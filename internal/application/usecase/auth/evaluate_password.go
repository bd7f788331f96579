package auth

import (
	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// EvaluatePasswordUseCase scores a candidate password for live feedback.
// It touches no storage and is safe to call on every keystroke.
type EvaluatePasswordUseCase struct {
	passwordService adapter.PasswordService
}

// NewEvaluatePasswordUseCase creates a new EvaluatePasswordUseCase instance.
func NewEvaluatePasswordUseCase(passwordService adapter.PasswordService) *EvaluatePasswordUseCase {
	return &EvaluatePasswordUseCase{passwordService: passwordService}
}

// Execute returns the strength assessment of the password.
func (uc *EvaluatePasswordUseCase) Execute(password string) valueobject.PasswordStrength {
	return uc.passwordService.EvaluateStrength(password)
}
