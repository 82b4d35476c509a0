package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEventService(t *testing.T) (usecase.EventUsecase, *mockService.MockProductCache) {
	cache := mockService.NewMockProductCache(t)

	return NewEventService(EventServiceParams{
		Cache:  cache,
		Logger: newDiscardLogger(),
	}), cache
}

func TestEventService_HandleTransactionEvent_InvalidatesEachProductOnce(t *testing.T) {
	svc, cache := createTestEventService(t)
	ctx := context.Background()

	cache.On("Invalidate", ctx, int64(3)).Return(nil).Once()
	cache.On("Invalidate", ctx, int64(7)).Return(nil).Once()

	err := svc.HandleTransactionEvent(ctx, &service.TransactionEvent{
		Type:          constants.EventTransactionCreated,
		TransactionID: 11,
		ProductIDs:    []int64{7, 3, 7, 0},
	})
	require.NoError(t, err)
}

func TestEventService_HandleTransactionEvent_CacheFailure(t *testing.T) {
	svc, cache := createTestEventService(t)
	ctx := context.Background()

	cache.On("Invalidate", ctx, int64(3)).Return(errors.New("redis down"))
	cache.On("Invalidate", ctx, int64(4)).Return(nil)

	err := svc.HandleTransactionEvent(ctx, &service.TransactionEvent{
		Type:          constants.EventTransactionCompleted,
		TransactionID: 11,
		ProductIDs:    []int64{3, 4},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrMalformedEvent)
}

func TestEventService_HandleTransactionEvent_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		event *service.TransactionEvent
	}{
		{name: "nil event"},
		{name: "missing transaction", event: &service.TransactionEvent{Type: constants.EventTransactionCreated}},
		{name: "unknown type", event: &service.TransactionEvent{Type: "transaction.refunded", TransactionID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestEventService(t)

			err := svc.HandleTransactionEvent(context.Background(), tt.event)
			assert.ErrorIs(t, err, usecase.ErrMalformedEvent)
		})
	}
}
