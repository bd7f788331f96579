package auth

import (
	"context"
	"log/slog"

	"github.com/pitmydoro/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Logout always succeeds.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Debug("Logout with unrevocable token", "error", err)
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
