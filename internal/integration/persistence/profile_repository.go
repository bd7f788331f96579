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

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves the profile of a user.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var m model.ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update saves profile changes. A unique index violation on username is
// reported as ErrUsernameTaken.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := r.db.WithContext(ctx).Save(model.ProfileModelFromEntity(profile))
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return domainerror.ErrUsernameTaken
	}
	return result.Error
}

// UsernameExists reports whether any profile uses the username.
func (r *profileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("username = ?", username).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
