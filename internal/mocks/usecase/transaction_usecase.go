package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockTransactionUsecase is a mock type for the TransactionUsecase type
type MockTransactionUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockTransactionUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Transaction], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.Transaction]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.Transaction]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.Transaction])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockTransactionUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error) {
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

// Checkout provides a mock function with given fields: ctx, callerID, input
func (_m *MockTransactionUsecase) Checkout(ctx context.Context, callerID int64, input *usecase.CheckoutInput) (*entity.Transaction, error) {
	ret := _m.Called(ctx, callerID, input)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.CheckoutInput) *entity.Transaction); ok {
		r0 = rf(ctx, callerID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Complete provides a mock function with given fields: ctx, callerID, id
func (_m *MockTransactionUsecase) Complete(ctx context.Context, callerID int64, id int64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.Transaction); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockTransactionUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.Transaction); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// InvoiceQR provides a mock function with given fields: ctx, callerID, id
func (_m *MockTransactionUsecase) InvoiceQR(ctx context.Context, callerID int64, id int64) ([]byte, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) []byte); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockTransactionUsecase creates a new instance of MockTransactionUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionUsecase {
	m := &MockTransactionUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
