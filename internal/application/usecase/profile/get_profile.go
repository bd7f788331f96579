package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// GetProfileUseCase returns the signed-in user's profile.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: profileRepo}
}

// Execute loads the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				err,
			)
		}
		return nil, err
	}
	return p, nil
}
