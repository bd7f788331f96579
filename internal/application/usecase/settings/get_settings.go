// Package settings contains Pomodoro settings and preference use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// GetSettingsUseCase returns a user's settings, creating the defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaultTeam  string
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository, defaultTeam string) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		defaultTeam:  defaultTeam,
	}
}

// Execute loads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.Settings, error) {
	s, err := uc.settingsRepo.FindByUserID(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s = entity.NewSettings(userID, uc.defaultTeam)
	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return s, nil
}
