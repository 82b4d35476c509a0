package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockProductTransactionRepository is a mock type for the ProductTransactionRepository type
type MockProductTransactionRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockProductTransactionRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.ProductTransaction, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.ProductTransaction); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ProductTransaction)
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
func (_m *MockProductTransactionRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.ProductTransaction); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProductTransactionRepository) FindByID(ctx context.Context, id int64) (*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.ProductTransaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// FindByTransaction provides a mock function with given fields: ctx, transactionID
func (_m *MockProductTransactionRepository) FindByTransaction(ctx context.Context, transactionID int64) ([]*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, transactionID)

	var r0 []*entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*entity.ProductTransaction); ok {
		r0 = rf(ctx, transactionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// CreateBatch provides a mock function with given fields: ctx, items
func (_m *MockProductTransactionRepository) CreateBatch(ctx context.Context, items []*entity.ProductTransaction) error {
	ret := _m.Called(ctx, items)

	r0 := ret.Error(0)

	return r0
}

// NewMockProductTransactionRepository creates a new instance of MockProductTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductTransactionRepository {
	m := &MockProductTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
