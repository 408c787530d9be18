package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/config"
)

// Redis wraps the go-redis client backing the event cache and the resource
// service's readiness check. The configured cache TTL travels with the
// wrapper so wiring code has one place to read it from.
type Redis struct {
	client   *redis.Client
	cacheTTL time.Duration
}

// NewRedis connects to Redis. A failed initial ping is logged but not fatal;
// the event cache degrades to direct reads while Redis is down.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{client: client, cacheTTL: cfg.EventCacheTTL()}
}

// Cache returns the client for cache decorators.
func (r *Redis) Cache() *redis.Client {
	return r.client
}

// CacheTTL returns the configured lifetime for cached event reads.
func (r *Redis) CacheTTL() time.Duration {
	return r.cacheTTL
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}
