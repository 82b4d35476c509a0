package usecase

import (
	"context"

	"storefront/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockEventUsecase is a mock type for the EventUsecase type
type MockEventUsecase struct {
	mock.Mock
}

// HandleTransactionEvent provides a mock function with given fields: ctx, event
func (_m *MockEventUsecase) HandleTransactionEvent(ctx context.Context, event *service.TransactionEvent) error {
	ret := _m.Called(ctx, event)

	r0 := ret.Error(0)

	return r0
}

// NewMockEventUsecase creates a new instance of MockEventUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventUsecase {
	m := &MockEventUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
