package dto

import (
	"time"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// ProfileResponse represents a public profile.
type ProfileResponse struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	Bio          string    `json:"bio"`
	PhotoURL     string    `json:"photo_url"`
	CoverURL     string    `json:"cover_url"`
	Location     string    `json:"location"`
	FavoriteTeam string    `json:"favorite_team"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProfileRequest is a partial update; omitted fields are kept.
type UpdateProfileRequest struct {
	Username     *string `json:"username"`
	DisplayName  *string `json:"display_name"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photo_url"`
	CoverURL     *string `json:"cover_url"`
	Location     *string `json:"location"`
	FavoriteTeam *string `json:"favorite_team"`
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:       p.UserID.String(),
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		Bio:          p.Bio,
		PhotoURL:     p.PhotoURL,
		CoverURL:     p.CoverURL,
		Location:     p.Location,
		FavoriteTeam: p.FavoriteTeam,
		UpdatedAt:    p.UpdatedAt,
	}
}
