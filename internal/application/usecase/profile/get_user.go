package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// GetUserOutput bundles the user document with its profile.
type GetUserOutput struct {
	User    *entity.User
	Profile *entity.Profile
}

// GetUserUseCase returns the signed-in user's account documents.
type GetUserUseCase struct {
	userRepo    adapter.UserRepository
	profileRepo adapter.ProfileRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository, profileRepo adapter.ProfileRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Execute loads the user and profile.
func (uc *GetUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	p, err := NewGetProfileUseCase(uc.profileRepo).Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &GetUserOutput{User: user, Profile: p}, nil
}
