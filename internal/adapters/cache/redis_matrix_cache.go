package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachableMark encodes a cached nil travel time. Purely a storage
// encoding; it never leaves this adapter as a value.
const unreachableMark = "-"

// RedisMatrixCache keeps one hash per origin, field = destination id,
// value = minutes. Entries expire so stale schedules age out.
type RedisMatrixCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMatrixCache(client *redis.Client, ttl time.Duration) *RedisMatrixCache {
	return &RedisMatrixCache{Client: client, TTL: ttl}
}

func matrixKey(originID string) string {
	return "matrix:" + originID
}

// Fetch cached travel times for one origin and multiple destinations.
func (r *RedisMatrixCache) GetMany(
	ctx context.Context,
	originID string,
	destinationIDs []string,
) (map[string]*float64, error) {
	if r.Client == nil {
		return nil, errors.New("matrix cache: redis client is nil")
	}

	if originID == "" {
		return nil, errors.New("get matrix cache: origin id must not be empty")
	}

	if len(destinationIDs) == 0 {
		return map[string]*float64{}, nil
	}

	vals, err := r.Client.HMGet(ctx, matrixKey(originID), destinationIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: hmget: %w", err)
	}

	out := make(map[string]*float64, len(destinationIDs))
	for i, raw := range vals {
		if raw == nil {
			continue
		}

		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("get matrix cache: unexpected value type for %q", destinationIDs[i])
		}

		if s == unreachableMark {
			out[destinationIDs[i]] = nil
			continue
		}

		m, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("get matrix cache: parse minutes for %q: %w", destinationIDs[i], err)
		}
		out[destinationIDs[i]] = &m
	}

	return out, nil
}

// Store one origin's travel-time row, nil values included.
func (r *RedisMatrixCache) PutMany(
	ctx context.Context,
	originID string,
	minutes map[string]*float64,
) error {
	if r.Client == nil {
		return errors.New("matrix cache: redis client is nil")
	}

	if originID == "" {
		return errors.New("insert matrix cache: origin id must not be empty")
	}

	if len(minutes) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(minutes))
	for dest, m := range minutes {
		if dest == "" {
			return errors.New("insert matrix cache: empty destination key")
		}

		if m == nil {
			fields[dest] = unreachableMark
		} else {
			fields[dest] = strconv.FormatFloat(*m, 'f', -1, 64)
		}
	}

	key := matrixKey(originID)
	if err := r.Client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("insert matrix cache: hset: %w", err)
	}

	if r.TTL > 0 {
		if err := r.Client.Expire(ctx, key, r.TTL).Err(); err != nil {
			return fmt.Errorf("insert matrix cache: expire: %w", err)
		}
	}

	return nil
}
