package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"courier-profit-service/internal/domain"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, ttl), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	loc := domain.Location{
		Latitude:         1.3100,
		Longitude:        103.8100,
		FormattedAddress: "1 TEST ROAD SINGAPORE 310001",
		PostalCode:       "310001",
		BuildingType:     domain.BuildingHDB,
	}

	if err := c.Put(ctx, "BLK 1 TEST ROAD", loc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "BLK 1 TEST ROAD")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Hour)

	_, ok, err := c.Get(context.Background(), "NEVER STORED")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestRedisGeocodeCacheExpiry(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "KEY", domain.Location{FormattedAddress: "X"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "KEY")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected the entry to expire")
	}
}

func TestRedisGeocodeCacheKeyPrefix(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Hour)

	if err := c.Put(context.Background(), "KEY", domain.Location{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !mr.Exists("geocode:KEY") {
		t.Fatal("expected the geocode: key prefix")
	}
}
