package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for Pomodoro settings persistence.
type SettingsRepository interface {
	// FindByUserID returns domainerror.ErrSettingsNotFound when nothing is stored.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// Save inserts or replaces the user's settings.
	Save(ctx context.Context, settings *entity.Settings) error
}
