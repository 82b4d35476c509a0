package service

import (
	"context"

	"storefront/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

// PublishTransactionEvent provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishTransactionEvent(ctx context.Context, event *service.TransactionEvent) error {
	ret := _m.Called(ctx, event)

	r0 := ret.Error(0)

	return r0
}

// Close provides a mock function
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	r0 := ret.Error(0)

	return r0
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
