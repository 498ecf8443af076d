package persistence

import (
	"context"
	"testing"
)

func TestNilCacheBehavesAsMiss(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	var dest struct{ N int }
	hit, err := cache.Get(ctx, "key", &dest)
	if err != nil || hit {
		t.Errorf("nil cache Get = (%v, %v), want miss without error", hit, err)
	}
	if err := cache.Set(ctx, "key", 42); err != nil {
		t.Errorf("nil cache Set: %v", err)
	}
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("nil cache Delete: %v", err)
	}
}

func TestCacheWithoutClientBehavesAsMiss(t *testing.T) {
	cache := NewCache(nil, "test:", 0)
	ctx := context.Background()

	var dest int
	hit, err := cache.Get(ctx, "key", &dest)
	if err != nil || hit {
		t.Errorf("clientless cache Get = (%v, %v), want miss without error", hit, err)
	}
}
