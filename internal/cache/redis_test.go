package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payment-service/internal/config"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		Addr: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGetString(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "featureflag:paymentServiceFailure", true, time.Minute)
	require.NoError(t, err)

	raw, found, err := cache.GetString(ctx, "featureflag:paymentServiceFailure")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "true", raw)
}

func TestGetString(t *testing.T) {
	cache, mr := setupTestCache(t)
	require.NoError(t, mr.Set("flag", "on"))

	val, found, err := cache.GetString(context.Background(), "flag")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "on", val)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	_, found, err := cache.GetString(context.Background(), "no_such_key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "key"))

	_, found, err := cache.GetString(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetUnmarshalable(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.Set(context.Background(), "bad", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.Set")
}

func TestPing_ServerDown(t *testing.T) {
	cache, mr := setupTestCache(t)
	mr.Close()

	assert.Error(t, cache.Ping(context.Background()))
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}
