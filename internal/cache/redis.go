package cache

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

// Redis is a cache backed by a Redis server.
type Redis struct {
	c   *rdb.Client
	ttl time.Duration
}

// NewRedis returns a Redis cache. The connection is established lazily.
func NewRedis(addr string, db int, defaultTTL time.Duration) *Redis {
	return &Redis{
		c:   rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		ttl: defaultTTL,
	}
}

func (r *Redis) Get(ctx context.Context, k string) ([]byte, bool) {
	b, err := r.c.Get(ctx, k).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, k string, v []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = r.ttl
	}
	_ = r.c.Set(ctx, k, v, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, k string) { _ = r.c.Del(ctx, k).Err() }

// DeletePrefix scans for prefix* and deletes the matches in batches.
func (r *Redis) DeletePrefix(ctx context.Context, prefix string) error {
	const batch = 100
	keys := make([]string, 0, batch)
	it := r.c.Scan(ctx, 0, prefix+"*", batch).Iterator()
	for it.Next(ctx) {
		keys = append(keys, it.Val())
		if len(keys) == batch {
			if err := r.c.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.c.Del(ctx, keys...).Err()
	}
	return nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Redis) Close() error { return r.c.Close() }
