package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// UpdatePreferencesInput represents the input for updating display preferences.
type UpdatePreferencesInput struct {
	UserID   uuid.UUID
	Theme    *string
	Language *string
}

// UpdatePreferencesUseCase updates the theme and language stored on the user document.
type UpdatePreferencesUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(userRepo adapter.UserRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{userRepo: userRepo}
}

// Execute validates and stores the preferences.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	prefs := user.Preferences
	if input.Theme != nil {
		theme := entity.Theme(*input.Theme)
		if !theme.IsValid() {
			return nil, invalidPreference(fmt.Sprintf("unsupported theme %q", *input.Theme))
		}
		prefs.Theme = theme
	}
	if input.Language != nil {
		lang := entity.Language(*input.Language)
		if !lang.IsValid() {
			return nil, invalidPreference(fmt.Sprintf("unsupported language %q", *input.Language))
		}
		prefs.Language = lang
	}

	user.Preferences = prefs
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return user, nil
}

func invalidPreference(message string) error {
	return domainerror.NewSettingsError(
		domainerror.ErrCodeInvalidPreference,
		message,
		domainerror.ErrInvalidPreference,
	)
}
