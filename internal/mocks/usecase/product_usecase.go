package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockProductUsecase is a mock type for the ProductUsecase type
type MockProductUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockProductUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Product], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.Product]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.Product]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.Product])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockProductUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error) {
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

// Store provides a mock function with given fields: ctx, input
func (_m *MockProductUsecase) Store(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateProductInput) *entity.Product); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, input
func (_m *MockProductUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, id, input)

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.UpdateProductInput) *entity.Product); ok {
		r0 = rf(ctx, id, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, id
func (_m *MockProductUsecase) Destroy(ctx context.Context, id int64) (*entity.Product, error) {
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

// NewMockProductUsecase creates a new instance of MockProductUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
