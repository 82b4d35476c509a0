package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	cache  service.ProductCache
	logger *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Cache  service.ProductCache
	Logger *slog.Logger
}

// NewEventService creates the transaction event consumer.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

func (srv *eventService) HandleTransactionEvent(ctx context.Context, event *service.TransactionEvent) error {
	if event == nil || event.TransactionID <= 0 {
		return errors.Wrap(usecase.ErrMalformedEvent, "missing transaction id")
	}

	switch event.Type {
	case constants.EventTransactionCreated, constants.EventTransactionCompleted:
	default:
		return errors.Wrapf(usecase.ErrMalformedEvent, "unknown event type %q", event.Type)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("type", event.Type),
		slog.Int64("transactionID", event.TransactionID),
	)

	productIDs := slices.Clone(event.ProductIDs)
	slices.Sort(productIDs)
	productIDs = slices.Compact(productIDs)

	var failed []int64
	for _, productID := range productIDs {
		if productID <= 0 {
			continue
		}
		if err := srv.cache.Invalidate(ctx, productID); err != nil {
			logger.Warn("Product cache invalidation failed", slog.Int64("productID", productID), slog.Any("error", err))
			failed = append(failed, productID)
		}
	}

	if len(failed) > 0 {
		return errors.Errorf("invalidate %d of %d products", len(failed), len(productIDs))
	}

	logger.Info("Transaction event handled", slog.Int("products", len(productIDs)))

	return nil
}
