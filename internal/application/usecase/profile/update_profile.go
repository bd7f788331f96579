package profile

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// Field limits for free-text profile data.
const (
	maxDisplayNameLength = 100
	maxBioLength         = 500
	maxLocationLength    = 100
)

// UpdateProfileInput is a partial update: nil fields are left untouched.
type UpdateProfileInput struct {
	UserID       uuid.UUID
	Username     *string
	DisplayName  *string
	Bio          *string
	PhotoURL     *string
	CoverURL     *string
	Location     *string
	FavoriteTeam *string
}

// UpdateProfileUseCase applies profile edits.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profileRepo: profileRepo}
}

// Execute validates and stores the changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.Profile, error) {
	p, err := NewGetProfileUseCase(uc.profileRepo).Execute(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username, ok := entity.NormalizeUsername(*input.Username)
		if !ok {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidUsername,
				"username must be 3-30 characters of letters, digits or underscores",
				domainerror.ErrInvalidUsername,
			)
		}
		if username != p.Username {
			taken, err := uc.profileRepo.UsernameExists(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("failed to check username: %w", err)
			}
			if taken {
				return nil, domainerror.NewProfileError(
					domainerror.ErrCodeUsernameTaken,
					"username already taken",
					domainerror.ErrUsernameTaken,
				)
			}
			p.Username = username
		}
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" || len(name) > maxDisplayNameLength {
			return nil, invalidField("display name must be 1-100 characters")
		}
		p.DisplayName = name
	}
	if input.Bio != nil {
		if len(*input.Bio) > maxBioLength {
			return nil, invalidField("bio must be at most 500 characters")
		}
		p.Bio = *input.Bio
	}
	if input.Location != nil {
		if len(*input.Location) > maxLocationLength {
			return nil, invalidField("location must be at most 100 characters")
		}
		p.Location = strings.TrimSpace(*input.Location)
	}
	if input.PhotoURL != nil {
		if !isEmptyOrHTTPURL(*input.PhotoURL) {
			return nil, invalidField("photo URL must be an http(s) URL")
		}
		p.PhotoURL = *input.PhotoURL
	}
	if input.CoverURL != nil {
		if !isEmptyOrHTTPURL(*input.CoverURL) {
			return nil, invalidField("cover URL must be an http(s) URL")
		}
		p.CoverURL = *input.CoverURL
	}
	if input.FavoriteTeam != nil {
		team := strings.ToLower(strings.TrimSpace(*input.FavoriteTeam))
		if team == "" {
			return nil, invalidField("favorite team must not be empty")
		}
		p.FavoriteTeam = team
	}

	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

func invalidField(message string) error {
	return domainerror.NewProfileError(domainerror.ErrCodeInvalidProfileData, message, nil)
}

func isEmptyOrHTTPURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
