package usecase

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.TokenOutput
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) *usecase.TokenOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.TokenOutput)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.TokenOutput
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) *usecase.TokenOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.TokenOutput)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Logout provides a mock function with given fields: ctx, claims
func (_m *MockAuthUsecase) Logout(ctx context.Context, claims *service.Claims) error {
	ret := _m.Called(ctx, claims)

	r0 := ret.Error(0)

	return r0
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
