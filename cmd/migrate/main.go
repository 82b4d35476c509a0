// Command migrate creates or updates the storefront schema.
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

// migrate runs after the database ping hook registered by postgres.New.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			models := model.All()
			if err := params.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
				return errors.Wrap(err, "auto migrate")
			}

			params.Logger.Info("Schema migrated", slog.Int("tables", len(models)))

			return nil
		},
	})
}
