package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAddressUsecase is a mock type for the AddressUsecase type
type MockAddressUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockAddressUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Address], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.Address]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.Address]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.Address])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockAddressUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error) {
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

// Store provides a mock function with given fields: ctx, callerID, input
func (_m *MockAddressUsecase) Store(ctx context.Context, callerID int64, input *usecase.CreateAddressInput) (*entity.Address, error) {
	ret := _m.Called(ctx, callerID, input)

	var r0 *entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.CreateAddressInput) *entity.Address); ok {
		r0 = rf(ctx, callerID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Address)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id, input
func (_m *MockAddressUsecase) Update(ctx context.Context, callerID int64, id int64, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	ret := _m.Called(ctx, callerID, id, input)

	var r0 *entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, *usecase.UpdateAddressInput) *entity.Address); ok {
		r0 = rf(ctx, callerID, id, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Address)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockAddressUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.Address, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.Address
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.Address); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Address)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockAddressUsecase creates a new instance of MockAddressUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAddressUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressUsecase {
	m := &MockAddressUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
