package service

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenDenylist is a mock type for the TokenDenylist type
type MockTokenDenylist struct {
	mock.Mock
}

// Revoke provides a mock function with given fields: ctx, tokenID, expiresAt
func (_m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ret := _m.Called(ctx, tokenID, expiresAt)

	r0 := ret.Error(0)

	return r0
}

// IsRevoked provides a mock function with given fields: ctx, tokenID
func (_m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ret := _m.Called(ctx, tokenID)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockTokenDenylist creates a new instance of MockTokenDenylist. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenDenylist(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenDenylist {
	m := &MockTokenDenylist{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
