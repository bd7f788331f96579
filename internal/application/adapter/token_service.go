// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks session tokens.
type TokenService interface {
	// IssueTokenPair signs a new access/refresh pair and records the refresh token.
	IssueTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// IsRefreshTokenActive reports whether a refresh token is recorded and not revoked.
	IsRefreshTokenActive(ctx context.Context, token string) (bool, error)

	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeAllSessions revokes every refresh token of the user.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}

// PasswordResetToken represents a password reset token.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService manages single-use password reset tokens.
type PasswordResetTokenService interface {
	IssueResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)

	// LookupResetToken returns the unused token record. Expiry is checked by the caller.
	LookupResetToken(ctx context.Context, token string) (*PasswordResetToken, error)

	// ConsumeResetToken marks the token used. It fails with
	// ErrInvalidResetToken when the token was already consumed.
	ConsumeResetToken(ctx context.Context, token string) error
}
