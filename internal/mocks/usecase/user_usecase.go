package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockUserUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.User], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.User]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.User]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.User])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockUserUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.User, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.User); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Store provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Store(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateUserInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id, input
func (_m *MockUserUsecase) Update(ctx context.Context, callerID int64, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, callerID, id, input)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, *usecase.UpdateUserInput) *entity.User); ok {
		r0 = rf(ctx, callerID, id, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockUserUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.User, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.User); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
