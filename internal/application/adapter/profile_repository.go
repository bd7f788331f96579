package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error

	// UsernameExists reports whether any profile uses the username.
	UsernameExists(ctx context.Context, username string) (bool, error)
}
