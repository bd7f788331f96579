package cache

import (
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/pitmydoro/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	check := HealthCheck(client)
	if !check() {
		t.Error("expected healthy client")
	}

	mr.Close()
	if check() {
		t.Error("expected unhealthy client after server shutdown")
	}
}

func TestNewRedisClient_Errors(t *testing.T) {
	if _, err := NewRedisClient(&config.RedisConfig{}); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}

	if _, err := NewRedisClient(&config.RedisConfig{URL: "not-a-url"}); err == nil {
		t.Error("expected parse error")
	}

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	if _, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + addr}); err == nil {
		t.Error("expected ping error")
	}
}
