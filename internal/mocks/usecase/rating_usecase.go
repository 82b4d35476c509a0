package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockRatingUsecase is a mock type for the RatingUsecase type
type MockRatingUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec
func (_m *MockRatingUsecase) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Rating], error) {
	ret := _m.Called(ctx, spec)

	var r0 *usecase.ListOutput[*entity.Rating]
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec) *usecase.ListOutput[*entity.Rating]); ok {
		r0 = rf(ctx, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ListOutput[*entity.Rating])
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Show provides a mock function with given fields: ctx, id, spec
func (_m *MockRatingUsecase) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error) {
	ret := _m.Called(ctx, id, spec)

	var r0 *entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, int64, *query.Spec) *entity.Rating); ok {
		r0 = rf(ctx, id, spec)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Rating)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Store provides a mock function with given fields: ctx, callerID, input
func (_m *MockRatingUsecase) Store(ctx context.Context, callerID int64, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	ret := _m.Called(ctx, callerID, input)

	var r0 *entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, int64, *usecase.CreateRatingInput) *entity.Rating); ok {
		r0 = rf(ctx, callerID, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Rating)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, callerID, id, input
func (_m *MockRatingUsecase) Update(ctx context.Context, callerID int64, id int64, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	ret := _m.Called(ctx, callerID, id, input)

	var r0 *entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, *usecase.UpdateRatingInput) *entity.Rating); ok {
		r0 = rf(ctx, callerID, id, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Rating)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Destroy provides a mock function with given fields: ctx, callerID, id
func (_m *MockRatingUsecase) Destroy(ctx context.Context, callerID int64, id int64) (*entity.Rating, error) {
	ret := _m.Called(ctx, callerID, id)

	var r0 *entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *entity.Rating); ok {
		r0 = rf(ctx, callerID, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Rating)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockRatingUsecase creates a new instance of MockRatingUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRatingUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRatingUsecase {
	m := &MockRatingUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
