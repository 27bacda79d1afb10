package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed [Cache] for sharing bootstrap state across
// processes behind one gateway. Entries expire with a fixed TTL so a stale
// user never outlives its session window.
//
//	Docs: docs/cache.md
type Redis struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a [Redis] cache backed by the given client. prefix sets
// the key namespace; ttl bounds entry lifetime, zero means no expiry.
//
//	Docs: docs/cache.md
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "golaunch"
	}
	return &Redis{
		redis:  client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

// Get retrieves the value stored under key. Absence is reported via the
// second return, not an error.
//
//	Performance: 1 Redis GET.
//	Docs: docs/cache.md
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, true, nil
}

// Set stores value under key with the configured TTL.
//
//	Performance: 1 Redis SET.
//	Docs: docs/cache.md
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.redis.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Ping reports round-trip latency to the backing Redis.
//
//	Performance: 1 Redis PING.
//	Docs: docs/cache.md
func (r *Redis) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return time.Since(start), nil
}
