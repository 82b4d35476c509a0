package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockCartUsecase is a mock type for the CartUsecase type
type MockCartUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, callerID, spec
func (_m *MockCartUsecase) List(ctx context.Context, callerID int64, spec *query.Spec) (*usecase.ListOutput[*entity.Cart], error) {
	ret := _m.Called(ctx, callerID, spec)

	var r0 *usecase.ListOutput[*entity.Cart]
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *usecase.ListOutput[*entity.Cart]); ok {
		r0 = rf(ctx, callerID, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.Cart])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, callerID, id, spec
func (_m *MockCartUsecase) Show(ctx context.Context, callerID int64, id int64, spec *query.Spec) (*entity.Cart, error) {
	ret := _m.Called(ctx, callerID, id, spec)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, *query.Spec) *entity.Cart); ok {
		r0 = rf(ctx, callerID, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Store provides a mock function with given fields: ctx, callerID, input
func (_m *MockCartUsecase) Store(ctx context.Context, callerID int64, input *usecase.CreateCartInput) (*entity.Cart, error) {
	ret := _m.Called(ctx, callerID, input)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.CreateCartInput) *entity.Cart); ok {
		r0 = rf(ctx, callerID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id, input
func (_m *MockCartUsecase) Update(ctx context.Context, callerID int64, id int64, input *usecase.UpdateCartInput) (*entity.Cart, error) {
	ret := _m.Called(ctx, callerID, id, input)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, *usecase.UpdateCartInput) *entity.Cart); ok {
		r0 = rf(ctx, callerID, id, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockCartUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.Cart, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.Cart
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.Cart); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cart)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Details provides a mock function with given fields: ctx, callerID, shippingCost
func (_m *MockCartUsecase) Details(ctx context.Context, callerID int64, shippingCost int64) (*entity.CartSummary, error) {
	ret := _m.Called(ctx, callerID, shippingCost)

	var r0 *entity.CartSummary
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.CartSummary); ok {
		r0 = rf(ctx, callerID, shippingCost)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.CartSummary)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockCartUsecase creates a new instance of MockCartUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCartUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartUsecase {
	m := &MockCartUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
