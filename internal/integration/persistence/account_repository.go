package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount inserts the user, profile and settings rows in one transaction.
func (r *accountRepository) CreateAccount(ctx context.Context, user *entity.User, profile *entity.Profile, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.FromEntity(user)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domainerror.ErrEmailAlreadyExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Create(model.ProfileModelFromEntity(profile)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domainerror.ErrUsernameTaken
			}
			return fmt.Errorf("failed to create profile: %w", err)
		}
		if err := tx.Create(model.SettingsModelFromEntity(settings)).Error; err != nil {
			return fmt.Errorf("failed to create settings: %w", err)
		}
		return nil
	})
}

// DeleteAccount removes the user together with its profile, settings and tokens.
func (r *accountRepository) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []any{
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.SettingsModel{},
			&model.ProfileModel{},
		}
		for _, m := range dependents {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to delete %T: %w", m, err)
			}
		}

		result := tx.Delete(&model.UserModel{}, "id = ?", userID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrUserNotFound
		}
		return nil
	})
}
