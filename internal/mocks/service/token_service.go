package service

import (
	"time"

	"storefront/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

// GenerateAccessToken provides a mock function with given fields: userID
func (_m *MockTokenService) GenerateAccessToken(userID int64) (string, time.Time, error) {
	ret := _m.Called(userID)

	r0 := ret.String(0)
	var r1 time.Time
	if rf, ok := ret.Get(1).(func(int64) time.Time); ok {
		r1 = rf(userID)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(time.Time)
	}
	r2 := ret.Error(2)

	return r0, r1, r2
}

// ValidateToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(tokenString)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
