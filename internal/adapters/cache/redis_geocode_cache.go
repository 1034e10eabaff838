package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"airport-nav-service/internal/domain"
)

// Redis-backed cache mapping address strings to geographic coordinates.
// Address keys are expected to be consistent (e.g., normalized) by the
// caller.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

type cachedCoords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func geocodeKey(address string) string { return "geocode:" + address }

// Get fetches cached coordinates for one address. The second return value
// reports whether the address was present.
func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if c.client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: client is nil")
	}
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: address must not be empty")
	}

	raw, err := c.client.Get(ctx, geocodeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache %q: %w", address, err)
	}

	var cc cachedCoords
	if err := json.Unmarshal([]byte(raw), &cc); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache %q: decode: %w", address, err)
	}

	return domain.Coordinates{Lat: cc.Lat, Lng: cc.Lng}, true, nil
}

// Put stores an address -> coordinate mapping with the cache TTL.
func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if c.client == nil {
		return errors.New("geocode cache: client is nil")
	}
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	raw, err := json.Marshal(cachedCoords{Lat: coords.Lat, Lng: coords.Lng})
	if err != nil {
		return fmt.Errorf("insert geocode cache %q: encode: %w", address, err)
	}

	if err := c.client.Set(ctx, geocodeKey(address), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache %q: %w", address, err)
	}

	return nil
}
