package cache

import (
	"context"
	"log/slog"

	"storefront/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the Redis client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to the configured Redis. It returns nil when Redis
// is not configured; consumers fall back to in-process behaviour.
func NewRedisClient(params ClientParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Reads fall through to Postgres while Redis is down.
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return client
}
