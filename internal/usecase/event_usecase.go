package usecase

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// ErrMalformedEvent marks an event that can never be processed. Redelivery
// will not help, so consumers acknowledge it.
var ErrMalformedEvent = errors.New("malformed transaction event")

// EventUsecase consumes transaction events published after a checkout step commits.
type EventUsecase interface {
	// HandleTransactionEvent drops cached copies of every product whose stock
	// the transaction changed.
	HandleTransactionEvent(ctx context.Context, event *service.TransactionEvent) error
}
