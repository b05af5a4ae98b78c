package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisMatrixCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisMatrixCache(client, time.Hour)
}

func TestRedisMatrixCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	ten := 10.5
	row := map[string]*float64{
		"D1": &ten,
		"D2": nil, // cached unreachable
	}

	if err := c.PutMany(ctx, "A", row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, "A", []string{"D1", "D2", "D3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := got["D1"]
	if !ok || v == nil || *v != 10.5 {
		t.Fatalf("D1 = %v (present=%v), want 10.5", v, ok)
	}

	// Present-but-nil means cached unreachable; a missing key is a miss.
	v, ok = got["D2"]
	if !ok || v != nil {
		t.Fatalf("D2 present=%v value=%v, want present with nil", ok, v)
	}
	if _, ok := got["D3"]; ok {
		t.Fatal("D3 should be a cache miss")
	}
}

func TestRedisMatrixCacheEmptyOrigin(t *testing.T) {
	c := newTestCache(t)

	if _, err := c.GetMany(context.Background(), "", []string{"D1"}); err == nil {
		t.Fatal("expected error for empty origin id, got nil")
	}
	if err := c.PutMany(context.Background(), "", map[string]*float64{"D1": nil}); err == nil {
		t.Fatal("expected error for empty origin id, got nil")
	}
}
