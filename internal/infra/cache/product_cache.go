// Package cache provides the Redis-backed product read cache and token denylist.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProductCache wraps a Redis client as a ProductCache.
func NewRedisProductCache(client *redis.Client, ttl time.Duration) service.ProductCache {
	return &redisProductCache{client: client, ttl: ttl}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *redisProductCache) Get(ctx context.Context, id int64) (*entity.Product, bool, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	product := new(entity.Product)
	if err := json.Unmarshal(raw, product); err != nil {
		return nil, false, errors.WithStack(err)
	}

	return product, true, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.client.Set(ctx, productKey(product.ID), raw, c.ttl).Err())
}

func (c *redisProductCache) Invalidate(ctx context.Context, id int64) error {
	return errors.WithStack(c.client.Del(ctx, productKey(id)).Err())
}

// noopProductCache is used when Redis is not configured.
type noopProductCache struct{}

func (noopProductCache) Get(context.Context, int64) (*entity.Product, bool, error) {
	return nil, false, nil
}

func (noopProductCache) Set(context.Context, *entity.Product) error { return nil }

func (noopProductCache) Invalidate(context.Context, int64) error { return nil }

// ProductCacheParams holds dependencies for ProductCache, injected by Fx
type ProductCacheParams struct {
	fx.In

	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache creates a ProductCache on the shared client, or a noop
// cache when Redis is not configured.
func NewProductCache(params ProductCacheParams) service.ProductCache {
	if params.Client == nil {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopProductCache{}
	}

	return NewRedisProductCache(params.Client, params.Config.Redis.TTL)
}
