package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindByUserID retrieves the settings row of a user.
func (r *settingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Settings, error) {
	var m model.SettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Save inserts the settings row or replaces the existing one.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Save(model.SettingsModelFromEntity(settings)).Error
}
