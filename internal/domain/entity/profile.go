package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFavoriteTeam is the team assigned to new profiles.
const DefaultFavoriteTeam = "ferrari"

// fallbackUsername is used when an email yields no usable characters.
const fallbackUsername = "user"

// Profile represents the public profile attached to a user.
type Profile struct {
	UserID       uuid.UUID
	Username     string
	DisplayName  string
	Bio          string
	PhotoURL     string
	CoverURL     string
	Location     string
	FavoriteTeam string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile creates a profile for a freshly registered user.
// The display name defaults to the username.
func NewProfile(userID uuid.UUID, username string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		UserID:       userID,
		Username:     username,
		DisplayName:  username,
		FavoriteTeam: DefaultFavoriteTeam,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BaseUsername derives a username seed from an email address: the local part,
// lowercased, keeping only a-z and 0-9.
func BaseUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return fallbackUsername
	}
	return b.String()
}

// UsernameCandidate returns the n-th candidate for a base: base, base1, base2, ...
func UsernameCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n)
}

// Username format limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// NormalizeUsername lowercases and trims a requested username and reports
// whether it satisfies the format rules: 3 to 30 characters of a-z, 0-9 or '_'.
func NormalizeUsername(username string) (string, bool) {
	u := strings.ToLower(strings.TrimSpace(username))
	if len(u) < MinUsernameLength || len(u) > MaxUsernameLength {
		return u, false
	}
	for _, r := range u {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_') {
			return u, false
		}
	}
	return u, true
}
