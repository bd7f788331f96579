package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// deleteConfirmation is the literal a client may send to confirm deletion.
const deleteConfirmation = "DELETE"

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// DeleteAccountUseCase removes an account with its profile and settings.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if input.Confirmation != "" && input.Confirmation != deleteConfirmation {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation must be exactly 'DELETE'",
			nil,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.tokenService.RevokeAllSessions(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	if err := uc.accountRepo.DeleteAccount(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
