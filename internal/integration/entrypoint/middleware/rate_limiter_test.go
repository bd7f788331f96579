package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.POST("/login", rl.Middleware("login"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/register", rl.Middleware("register"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_MemoryStore(t *testing.T) {
	rl := NewRateLimiterWithConfig(nil, RateLimiterConfig{MaxAttempts: 3, Window: time.Minute, Enabled: true})
	r := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		if w := hit(r, "/login"); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := hit(r, "/login")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}

	if w := hit(r, "/register"); w.Code != http.StatusOK {
		t.Errorf("scopes must be counted separately, got %d", w.Code)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	n, _, _ := store.Hit(ctx, "k", 20*time.Millisecond)
	n, _, _ = store.Hit(ctx, "k", 20*time.Millisecond)
	if n != 2 {
		t.Fatalf("expected 2 hits, got %d", n)
	}

	time.Sleep(30 * time.Millisecond)
	n, _, _ = store.Hit(ctx, "k", 20*time.Millisecond)
	if n != 1 {
		t.Errorf("expected a fresh window, got %d", n)
	}
}

func TestRateLimiter_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, ttl, err := store.Hit(ctx, "login:10.0.0.1", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != i {
			t.Errorf("expected count %d, got %d", i, n)
		}
		if ttl <= 0 || ttl > time.Minute {
			t.Errorf("unexpected ttl %v", ttl)
		}
	}

	mr.FastForward(time.Minute + time.Second)
	n, _, err := store.Hit(ctx, "login:10.0.0.1", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected window to reset, got %d", n)
	}
}

type brokenStore struct{}

func (brokenStore) Hit(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("connection refused")
}

func TestRateLimiter_FallsBackToMemory(t *testing.T) {
	rl := NewRateLimiterWithConfig(brokenStore{}, RateLimiterConfig{MaxAttempts: 1, Window: time.Minute, Enabled: true})
	r := newLimitedRouter(rl)

	if w := hit(r, "/login"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := hit(r, "/login"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected fallback store to limit, got %d", w.Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(nil, RateLimiterConfig{MaxAttempts: 1, Window: time.Minute, Enabled: false})
	r := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		if w := hit(r, "/login"); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiter_ScopeLimits(t *testing.T) {
	rl := NewRateLimiterWithConfig(nil, RateLimiterConfig{
		MaxAttempts: 2,
		Window:      time.Minute,
		Enabled:     true,
		ScopeLimits: map[string]int{ScopeRegister: 4},
	})
	r := newLimitedRouter(rl)

	for i := 0; i < 4; i++ {
		if w := hit(r, "/register"); w.Code != http.StatusOK {
			t.Fatalf("register attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if w := hit(r, "/register"); w.Code != http.StatusTooManyRequests {
		t.Errorf("fifth register attempt: expected 429, got %d", w.Code)
	}

	hit(r, "/login")
	hit(r, "/login")
	if w := hit(r, "/login"); w.Code != http.StatusTooManyRequests {
		t.Errorf("login should keep the default limit, got %d", w.Code)
	}
}

func TestRateLimiter_StrengthScopeDefault(t *testing.T) {
	rl := NewRateLimiter()

	if got := rl.limitFor(ScopePasswordStrength); got != defaultStrengthMaxAttempts {
		t.Errorf("password strength limit = %d, want %d", got, defaultStrengthMaxAttempts)
	}
	if got := rl.limitFor(ScopeLogin); got != defaultMaxAttempts {
		t.Errorf("login limit = %d, want %d", got, defaultMaxAttempts)
	}
}
