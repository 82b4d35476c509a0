package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockProductTransactionUsecase is a mock type for the ProductTransactionUsecase type
type MockProductTransactionUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockProductTransactionUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.ProductTransaction], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.ProductTransaction]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.ProductTransaction]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.ProductTransaction])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockProductTransactionUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error) {
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

// Store provides a mock function with given fields: ctx, callerID, input
func (_m *MockProductTransactionUsecase) Store(ctx context.Context, callerID int64, input *usecase.CreateProductTransactionInput) (*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, callerID, input)

	var r0 *entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.CreateProductTransactionInput) *entity.ProductTransaction); ok {
		r0 = rf(ctx, callerID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id
func (_m *MockProductTransactionUsecase) Update(ctx context.Context, callerID int64, id int64) (*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.ProductTransaction); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockProductTransactionUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.ProductTransaction, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.ProductTransaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.ProductTransaction); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ProductTransaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockProductTransactionUsecase creates a new instance of MockProductTransactionUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductTransactionUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductTransactionUsecase {
	m := &MockProductTransactionUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
