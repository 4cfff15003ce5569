package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"courier-profit-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores resolved locations as JSON values with a TTL, for
// deployments that already run Redis.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Get fetches one cached location; a miss is (zero, false, nil).
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	if r.Client == nil {
		return domain.Location{}, false, errors.New("geocode cache: redis client is nil")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache %q: %w", address, err)
	}

	var loc domain.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache %q: decode: %w", address, err)
	}

	return loc, true, nil
}

// Put stores one address -> location mapping with the configured TTL.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}
	if address == "" {
		return errors.New("put geocode cache: empty address key")
	}

	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("put geocode cache %q: encode: %w", address, err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+address, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("put geocode cache %q: %w", address, err)
	}

	return nil
}
