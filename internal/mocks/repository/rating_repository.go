package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"

	mock "github.com/stretchr/testify/mock"
)

// MockRatingRepository is a mock type for the RatingRepository type
type MockRatingRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, spec, scope
func (_m *MockRatingRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Rating, int64, error) {
	ret := _m.Called(ctx, spec, scope)

	var r0 []*entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, *query.Spec, query.Scope) []*entity.Rating); ok {
		r0 = rf(ctx, spec, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Rating)
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
func (_m *MockRatingRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error) {
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

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockRatingRepository) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Rating
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Rating); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Rating)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Create provides a mock function with given fields: ctx, rating
func (_m *MockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ret := _m.Called(ctx, rating)

	r0 := ret.Error(0)

	return r0
}

// CreateBatch provides a mock function with given fields: ctx, ratings
func (_m *MockRatingRepository) CreateBatch(ctx context.Context, ratings []*entity.Rating) error {
	ret := _m.Called(ctx, ratings)

	r0 := ret.Error(0)

	return r0
}

// Update provides a mock function with given fields: ctx, rating
func (_m *MockRatingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	ret := _m.Called(ctx, rating)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockRatingRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// DeleteByProduct provides a mock function with given fields: ctx, productID
func (_m *MockRatingRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	ret := _m.Called(ctx, productID)

	r0 := ret.Error(0)

	return r0
}

// NewMockRatingRepository creates a new instance of MockRatingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRatingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRatingRepository {
	m := &MockRatingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
