package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	// defaultStrengthMaxAttempts leaves room for a strength check on every keystroke.
	defaultStrengthMaxAttempts = 600

	redisKeyPrefix = "ratelimit:"
)

// Rate limit scopes. Each scope keeps its own counter per client IP.
const (
	ScopeLogin            = "login"
	ScopeRegister         = "register"
	ScopeForgotPassword   = "forgot-password"
	ScopePasswordStrength = "password-strength"
)

// LimitStore counts attempts per key in fixed windows.
type LimitStore interface {
	// Hit records an attempt and returns the attempt count in the current
	// window along with the time left until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// memoryStore is a process-local LimitStore.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// NewMemoryStore creates an in-process LimitStore.
func NewMemoryStore() LimitStore {
	return &memoryStore{entries: make(map[string]*rateLimitEntry)}
}

func (s *memoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		entry = &rateLimitEntry{resetTime: now.Add(window)}
		s.entries[key] = entry
		s.evictExpired(now)
	}
	entry.attempts++

	return entry.attempts, entry.resetTime.Sub(now), nil
}

// evictExpired drops finished windows so the map does not grow without bound.
func (s *memoryStore) evictExpired(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// hitScript increments the window counter and starts the window on the first hit.
var hitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// redisStore is a LimitStore shared by every API instance.
type redisStore struct {
	client redis.Scripter
}

// NewRedisStore creates a LimitStore backed by Redis.
func NewRedisStore(client redis.Scripter) LimitStore {
	return &redisStore{client: client}
}

func (s *redisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := hitScript.Run(ctx, s.client, []string{redisKeyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit store: %w", err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("rate limit store: unexpected reply %v", res)
	}

	remaining := time.Duration(res[1]) * time.Millisecond
	if remaining < 0 {
		remaining = window
	}
	return res[0], remaining, nil
}

// RateLimiter provides IP-based rate limiting functionality. When the primary
// store fails the limiter keeps counting in memory.
type RateLimiter struct {
	store          LimitStore
	fallback       LimitStore
	maxAttempts    int64
	scopeLimits    map[string]int64
	windowDuration time.Duration
	enabled        bool
}

// RateLimiterConfig configures a RateLimiter.
type RateLimiterConfig struct {
	MaxAttempts int
	Window      time.Duration
	Enabled     bool

	// ScopeLimits overrides MaxAttempts for individual scopes.
	ScopeLimits map[string]int
}

// NewRateLimiter creates an in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(nil, RateLimiterConfig{
		MaxAttempts: defaultMaxAttempts,
		Window:      defaultWindowDuration,
		Enabled:     true,
	})
}

// NewRateLimiterWithConfig creates a rate limiter over store. A nil store
// counts in memory only.
func NewRateLimiterWithConfig(store LimitStore, cfg RateLimiterConfig) *RateLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultWindowDuration
	}

	fallback := NewMemoryStore()
	if store == nil {
		store = fallback
	}

	scopeLimits := map[string]int64{ScopePasswordStrength: defaultStrengthMaxAttempts}
	for scope, limit := range cfg.ScopeLimits {
		if limit > 0 {
			scopeLimits[scope] = int64(limit)
		}
	}

	return &RateLimiter{
		store:          store,
		fallback:       fallback,
		maxAttempts:    int64(cfg.MaxAttempts),
		scopeLimits:    scopeLimits,
		windowDuration: cfg.Window,
		enabled:        cfg.Enabled,
	}
}

// Middleware returns a Gin middleware handler limiting requests per client IP.
// scope separates the counters of different endpoints.
func (rl *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(c.Request.Context(), scope, scope+":"+clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, scope, key string) (bool, time.Duration) {
	count, remaining, err := rl.store.Hit(ctx, key, rl.windowDuration)
	if err != nil {
		slog.Warn("Rate limit store unavailable, counting in memory", "error", err)
		count, remaining, _ = rl.fallback.Hit(ctx, key, rl.windowDuration)
	}
	return count <= rl.limitFor(scope), remaining
}

func (rl *RateLimiter) limitFor(scope string) int64 {
	if limit, ok := rl.scopeLimits[scope]; ok {
		return limit
	}
	return rl.maxAttempts
}
