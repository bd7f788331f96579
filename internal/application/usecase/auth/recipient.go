package auth

import (
	"context"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
)

// recipientName picks the name an account email greets: the display name,
// then the username, then the address itself.
func recipientName(ctx context.Context, profiles adapter.ProfileRepository, user *entity.User) string {
	if profiles == nil {
		return user.Email
	}
	p, err := profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		return user.Email
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Username != "" {
		return p.Username
	}
	return user.Email
}
