package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockTransactionRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Transaction, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.Transaction); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Transaction)
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
func (_m *MockTransactionRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.Transaction); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Transaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByIDForUpdate provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Transaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, transaction
func (_m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ret := _m.Called(ctx, transaction)

	r0 := ret.Error(0)

	return r0
}

// MarkComplete provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) MarkComplete(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
