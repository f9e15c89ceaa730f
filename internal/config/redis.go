package config

// Redis is optional infrastructure: it only backs the request rate limiter.
// When the address is unset or the server is unreachable at startup the
// constructor returns nil and the limiter becomes a pass-through.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis dials Redis using the loaded configuration. A nil return means
// rate limiting is disabled for this process; it is not an error.
func NewRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil
	}
	return rdb
}
