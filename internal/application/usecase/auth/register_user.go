package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/application/usecase/profile"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Profile      *entity.Profile
	Settings     *entity.Settings
	Strength     valueobject.PasswordStrength
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	profileRepo     adapter.ProfileRepository
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
	defaultTeam     string
	appBaseURL      string
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
// emailService may be nil, in which case no welcome email is queued.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	defaultTeam string,
	appBaseURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
		defaultTeam:     defaultTeam,
		appBaseURL:      appBaseURL,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := validateNewPassword(uc.passwordService, input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	username, err := uc.pickUsername(ctx, email, input.Username)
	if err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, passwordHash)
	userProfile := entity.NewProfile(user.ID, username)
	settings := entity.NewSettings(user.ID, uc.defaultTeam)

	// The checks above can race with a concurrent registration; the unique
	// indexes are the final word.
	if err := uc.accountRepo.CreateAccount(ctx, user, userProfile, settings); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrEmailAlreadyExists):
			return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", err)
		case errors.Is(err, domainerror.ErrUsernameTaken):
			return nil, domainerror.NewProfileError(domainerror.ErrCodeUsernameTaken, "username already taken", err)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	tokenPair, err := uc.tokenService.IssueTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.queueWelcome(ctx, user, userProfile)

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
		Profile:      userProfile,
		Settings:     settings,
		Strength:     uc.passwordService.EvaluateStrength(input.Password),
	}, nil
}

// pickUsername honours a requested username when it is valid and free, and
// otherwise derives a unique one from the email.
func (uc *RegisterUserUseCase) pickUsername(ctx context.Context, email, requested string) (string, error) {
	if strings.TrimSpace(requested) == "" {
		return profile.UniqueUsername(ctx, uc.profileRepo, entity.BaseUsername(email))
	}

	username, ok := entity.NormalizeUsername(requested)
	if !ok {
		return "", domainerror.NewProfileError(
			domainerror.ErrCodeInvalidUsername,
			"username must be 3-30 characters of letters, digits or underscores",
			domainerror.ErrInvalidUsername,
		)
	}

	taken, err := uc.profileRepo.UsernameExists(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return "", domainerror.NewProfileError(
			domainerror.ErrCodeUsernameTaken,
			"username already taken",
			domainerror.ErrUsernameTaken,
		)
	}
	return username, nil
}

func (uc *RegisterUserUseCase) queueWelcome(ctx context.Context, user *entity.User, p *entity.Profile) {
	if uc.emailService == nil {
		return
	}
	err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
		UserEmail: user.Email,
		Username:  p.Username,
		AppURL:    uc.appBaseURL,
	})
	if err != nil {
		// Registration already succeeded; the email is best effort.
		slog.Error("Failed to queue welcome email", "error", err, "userID", user.ID)
	}
}
