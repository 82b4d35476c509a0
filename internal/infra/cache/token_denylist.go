package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	revokedKeyPrefix = "revoked:"
	// memoryDenylistSize caps revoked tokens held without Redis.
	memoryDenylistSize = 10000
)

type redisTokenDenylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisTokenDenylist stores revoked token ids in Redis with the token's
// remaining lifetime as TTL.
func NewRedisTokenDenylist(client *redis.Client) service.TokenDenylist {
	return &redisTokenDenylist{client: client, now: time.Now}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	return errors.WithStack(d.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err())
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := d.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errors.WithStack(err)
	}

	return n > 0, nil
}

// memoryTokenDenylist keeps revoked ids for the full access token TTL, which
// outlives any token issued by this process.
type memoryTokenDenylist struct {
	revoked *expirable.LRU[string, struct{}]
}

func newMemoryTokenDenylist(ttl time.Duration) *memoryTokenDenylist {
	return &memoryTokenDenylist{revoked: expirable.NewLRU[string, struct{}](memoryDenylistSize, nil, ttl)}
}

func (d *memoryTokenDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	if tokenID != "" {
		d.revoked.Add(tokenID, struct{}{})
	}

	return nil
}

func (d *memoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked.Contains(tokenID), nil
}

// TokenDenylistParams holds dependencies for TokenDenylist, injected by Fx
type TokenDenylistParams struct {
	fx.In

	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenDenylist creates a TokenDenylist on the shared client. Without
// Redis, revocations only hold within this process.
func NewTokenDenylist(params TokenDenylistParams) service.TokenDenylist {
	if params.Client == nil {
		params.Logger.Info("Redis not configured, token denylist kept in memory")

		return newMemoryTokenDenylist(params.Config.Auth.AccessTokenTTL)
	}

	return NewRedisTokenDenylist(params.Client)
}
