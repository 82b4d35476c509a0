package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisProductCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisProductCache(client, time.Minute).(*redisProductCache)
}

func TestRedisProductCache_SetGetInvalidate(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, hit)

	product := &entity.Product{ID: 7, Label: "Shirt", Qty: 10, Price: 15000, Size: 42, Category: "tops"}
	require.NoError(t, cache.Set(ctx, product))
	assert.True(t, mr.Exists("product:7"))
	assert.Equal(t, time.Minute, mr.TTL("product:7"))

	got, hit, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, product.Label, got.Label)
	assert.Equal(t, product.Price, got.Price)

	require.NoError(t, cache.Invalidate(ctx, 7))
	assert.False(t, mr.Exists("product:7"))
}

func TestRedisProductCache_Expiry(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &entity.Product{ID: 1, Label: "Hat"}))
	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisProductCache_CorruptEntry(t *testing.T) {
	mr, cache := newTestCache(t)
	require.NoError(t, mr.Set("product:3", "{not json"))

	_, _, err := cache.Get(context.Background(), 3)
	assert.Error(t, err)
}

func TestNewProductCache_DisabledWithoutRedis(t *testing.T) {
	c := NewProductCache(ProductCacheParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, ok := c.(noopProductCache)
	assert.True(t, ok)

	_, hit, err := c.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestNewProductCache_UsesSharedClient(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), TTL: time.Minute}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewRedisClient(ClientParams{Lc: lc, Config: cfg, Logger: logger})
	require.NotNil(t, client)
	lc.RequireStart()
	defer lc.RequireStop()

	c := NewProductCache(ProductCacheParams{Client: client, Config: cfg, Logger: logger})
	require.NoError(t, c.Set(context.Background(), &entity.Product{ID: 5, Label: "Cap"}))
	assert.True(t, mr.Exists("product:5"))
}

func TestNewRedisClient_NilWithoutConfig(t *testing.T) {
	client := NewRedisClient(ClientParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Nil(t, client)
}
