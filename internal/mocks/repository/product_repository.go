package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock type for the ProductRepository type
type MockProductRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockProductRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Product, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.Product); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
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
func (_m *MockProductRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.Product); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	r0 := ret.Error(0)

	return r0
}

// Update provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// DecrementStock provides a mock function with given fields: ctx, id, qty
func (_m *MockProductRepository) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	ret := _m.Called(ctx, id, qty)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockProductRepository creates a new instance of MockProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
