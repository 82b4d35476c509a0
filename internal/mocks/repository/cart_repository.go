package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock type for the CartRepository type
type MockCartRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockCartRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Cart, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.Cart); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Cart)
	}
	var r1 int64
	if rf, ok := ret.Get(1).(func(context.Context, *query.Spec, query.Scope) int64); ok {
		r1 = rf(ctx, spec, scope)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(int64)
	}
	r2 := ret.Error(2)

	return r0, r1, r2
}

// Get provides a mock function with given fields: ctx, id, spec
func (_m *MockCartRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Cart, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.Cart); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockCartRepository) FindByID(ctx context.Context, id int64) (*entity.Cart, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Cart); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, cart
func (_m *MockCartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	ret := _m.Called(ctx, cart)

	r0 := ret.Error(0)

	return r0
}

// Update provides a mock function with given fields: ctx, cart
func (_m *MockCartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	ret := _m.Called(ctx, cart)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockCartRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// DeleteByUserAndProduct provides a mock function with given fields: ctx, userID, productID
func (_m *MockCartRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) (int64, error) {
	ret := _m.Called(ctx, userID, productID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) int64); ok {
		r0 = rf(ctx, userID, productID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteByProduct provides a mock function with given fields: ctx, productID
func (_m *MockCartRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	ret := _m.Called(ctx, productID)

	r0 := ret.Error(0)

	return r0
}

// Subtotal provides a mock function with given fields: ctx, userID
func (_m *MockCartRepository) Subtotal(ctx context.Context, userID int64) (int64, error) {
	ret := _m.Called(ctx, userID)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockCartRepository creates a new instance of MockCartRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
