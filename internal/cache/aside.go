package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"devconnect/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: it tries to read the key from
// Redis, falls back to fetch on a miss, and writes the fetched value back
// with the given TTL. When no Redis client is configured it calls fetch
// directly. Cache write failures are swallowed; the fetched value is
// authoritative.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() (interface{}, error)) error {
	if client != nil {
		getCtx, span := observability.TraceRedisOperation(ctx, "GET")
		raw, err := client.Get(getCtx, key).Bytes()
		span.End()
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// Corrupt entry, drop it and fall through to fetch
			client.Del(ctx, key)
		} else if !errors.Is(err, redis.Nil) {
			// Redis unavailable, serve from source
		}
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}

	if client != nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}
