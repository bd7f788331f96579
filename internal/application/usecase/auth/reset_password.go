package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo          adapter.UserRepository
	profileRepo       adapter.ProfileRepository
	passwordService   adapter.PasswordService
	resetTokenService adapter.PasswordResetTokenService
	tokenService      adapter.TokenService
	emailService      adapter.EmailService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	resetTokenService adapter.PasswordResetTokenService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		passwordService:   passwordService,
		resetTokenService: resetTokenService,
		tokenService:      tokenService,
		emailService:      emailService,
	}
}

// Execute performs the password reset and signs the user out everywhere.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	resetToken, err := uc.resetTokenService.LookupResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	if time.Now().UTC().After(resetToken.ExpiresAt) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredResetToken,
			"password reset token has expired",
			domainerror.ErrInvalidResetToken,
		)
	}

	if err := validateNewPassword(uc.passwordService, input.NewPassword, input.ConfirmPassword); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The token is consumed before the password is written; only one request
	// can consume it.
	if err := uc.resetTokenService.ConsumeResetToken(ctx, input.Token); err != nil {
		if errors.Is(err, domainerror.ErrInvalidResetToken) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidResetToken,
				"invalid or expired password reset token",
				err,
			)
		}
		return nil, fmt.Errorf("failed to consume reset token: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	if err := uc.tokenService.RevokeAllSessions(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	if uc.emailService != nil {
		if err := uc.emailService.QueuePasswordChangedEmail(ctx, adapter.QueuePasswordChangedInput{
			UserEmail: user.Email,
			UserName:  recipientName(ctx, uc.profileRepo, user),
		}); err != nil {
			slog.Error("Failed to queue password changed email", "error", err, "userID", user.ID)
		}
	}

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
