package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock type for the AddressRepository type
type MockAddressRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockAddressRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Address, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.Address); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Address)
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
func (_m *MockAddressRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.Address); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Address)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockAddressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Address); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Address)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, address
func (_m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	ret := _m.Called(ctx, address)

	r0 := ret.Error(0)

	return r0
}

// Update provides a mock function with given fields: ctx, address
func (_m *MockAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	ret := _m.Called(ctx, address)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockAddressRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewMockAddressRepository creates a new instance of MockAddressRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
