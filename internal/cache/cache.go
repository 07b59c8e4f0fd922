// Package cache provides a small byte cache used by the service layer.
//
// Backends:
//   - memory (in-process, patrickmn/go-cache)
//   - redis (shared between instances, redis/go-redis)
package cache

import (
	"context"
	"fmt"
	"time"

	"representantes/internal/config"
)

// Cache stores opaque values under string keys. Misses and backend failures are
// both reported as a miss: callers fall back to the source of truth.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores v for ttl; a zero ttl uses the backend default.
	Set(ctx context.Context, key string, v []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// New builds the cache selected by cfg.Driver.
func New(cfg config.CacheConfig) (Cache, error) {
	ttl := time.Duration(cfg.TTLSec) * time.Second
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg.RedisAddr, cfg.RedisDB, ttl), nil
	case "memory", "":
		return NewMemory(ttl), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
