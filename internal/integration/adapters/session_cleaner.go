package adapters

import (
	"context"
	"log/slog"
	"time"

	"github.com/pitmydoro/backend/internal/integration/persistence"
)

const defaultSessionCleanupInterval = time.Hour

// SessionCleaner periodically deletes expired refresh tokens.
type SessionCleaner struct {
	sessions persistence.TokenRepository
	interval time.Duration
}

// NewSessionCleaner creates a cleaner. A non-positive interval uses one hour.
func NewSessionCleaner(sessions persistence.TokenRepository, interval time.Duration) *SessionCleaner {
	if interval <= 0 {
		interval = defaultSessionCleanupInterval
	}
	return &SessionCleaner{
		sessions: sessions,
		interval: interval,
	}
}

// Start runs the cleanup loop until ctx is cancelled.
func (c *SessionCleaner) Start(ctx context.Context) {
	slog.Info("Session cleaner started", "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session cleaner stopped")
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce deletes expired refresh tokens and returns how many were removed.
func (c *SessionCleaner) RunOnce(ctx context.Context) int64 {
	deleted, err := c.sessions.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		slog.Error("Failed to delete expired refresh tokens", "error", err)
		return 0
	}
	if deleted > 0 {
		slog.Info("Deleted expired refresh tokens", "count", deleted)
	}
	return deleted
}
