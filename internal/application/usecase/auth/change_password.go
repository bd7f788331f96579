package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// ChangePasswordInput represents the input for an authenticated password change.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordOutput carries a fresh token pair; every previous session is revoked.
type ChangePasswordOutput struct {
	AccessToken  string
	RefreshToken string
	Strength     valueobject.PasswordStrength
}

// ChangePasswordUseCase handles password changes for signed-in users.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
	}
}

// Execute verifies the current password and stores the new one.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"current password is incorrect",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := validateNewPassword(uc.passwordService, input.NewPassword, input.ConfirmPassword); err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	if err := uc.tokenService.RevokeAllSessions(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if uc.emailService != nil {
		if err := uc.emailService.QueuePasswordChangedEmail(ctx, adapter.QueuePasswordChangedInput{
			UserEmail: user.Email,
			UserName:  recipientName(ctx, uc.profileRepo, user),
		}); err != nil {
			slog.Error("Failed to queue password changed email", "error", err, "userID", user.ID)
		}
	}

	return &ChangePasswordOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Strength:     uc.passwordService.EvaluateStrength(input.NewPassword),
	}, nil
}
