package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-nav-service/internal/domain"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *RedisGeocodeCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisGeocodeCache(client, time.Hour)
}

func TestRedisGeocodeCachePutGet(t *testing.T) {
	_, c := setupCache(t)
	ctx := context.Background()

	coords := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	require.NoError(t, c.Put(ctx, "Kempegowda International Airport", coords))

	got, ok, err := c.Get(ctx, "Kempegowda International Airport")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, coords, got)
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	_, c := setupCache(t)

	_, ok, err := c.Get(context.Background(), "never stored")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGeocodeCacheExpiry(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "Terminal 1", domain.Coordinates{Lat: 1, Lng: 2}))
	mr.FastForward(2 * time.Hour)

	_, ok, err := c.Get(ctx, "Terminal 1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	_, c := setupCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, c.Put(ctx, "", domain.Coordinates{}))
}
