package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisConnOnce sync.Once
	miniRedis     *miniredis.Miniredis
	redisConn     *redis.Client
)

// NewRedis starts a single in-process Redis server and returns it with a
// client connected to it.
func NewRedis() (*miniredis.Miniredis, *redis.Client) {
	redisConnOnce.Do(func() {
		var err error
		miniRedis, err = miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{
			Addr: miniRedis.Addr(),
		})
	})

	return miniRedis, redisConn
}

// ClearRedis drops every key.
func ClearRedis(conn *redis.Client) error {
	return conn.FlushAll(context.TODO()).Err()
}
