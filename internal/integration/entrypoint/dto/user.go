package dto

import (
	"time"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// UserResponse represents the user document in API responses.
type UserResponse struct {
	ID            string              `json:"id"`
	Email         string              `json:"email"`
	EmailVerified bool                `json:"email_verified"`
	Preferences   PreferencesResponse `json:"preferences"`
	CreatedAt     time.Time           `json:"created_at"`
}

// PreferencesResponse holds the display preferences of a user.
type PreferencesResponse struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// UpdatePreferencesRequest is a partial update; omitted fields are kept.
type UpdatePreferencesRequest struct {
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}

// MeResponse is returned by GET /users/me.
type MeResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Preferences: PreferencesResponse{
			Theme:    string(user.Preferences.Theme),
			Language: string(user.Preferences.Language),
		},
		CreatedAt: user.CreatedAt,
	}
}
