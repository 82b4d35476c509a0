package service

import (
	"context"

	"storefront/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockProductCache is a mock type for the ProductCache type
type MockProductCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockProductCache) Get(ctx context.Context, id int64) (*entity.Product, bool, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}
	r1 := ret.Bool(1)
	r2 := ret.Error(2)

	return r0, r1, r2
}

// Set provides a mock function with given fields: ctx, product
func (_m *MockProductCache) Set(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	r0 := ret.Error(0)

	return r0
}

// Invalidate provides a mock function with given fields: ctx, id
func (_m *MockProductCache) Invalidate(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewMockProductCache creates a new instance of MockProductCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductCache {
	m := &MockProductCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
