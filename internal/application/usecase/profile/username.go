// Package profile contains profile and user document use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
)

// maxUsernameAttempts bounds the suffix search for a free username.
const maxUsernameAttempts = 1000

// UniqueUsername returns the first free candidate among base, base1, base2, ...
func UniqueUsername(ctx context.Context, profiles adapter.ProfileRepository, base string) (string, error) {
	for n := 0; n < maxUsernameAttempts; n++ {
		candidate := entity.UsernameCandidate(base, n)
		taken, err := profiles.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free username for base %q after %d attempts", base, maxUsernameAttempts)
}
