package service

import (
	"storefront/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

// GenerateInvoiceQR provides a mock function with given fields: invoice
func (_m *MockQRCodeService) GenerateInvoiceQR(invoice service.InvoiceQR) ([]byte, error) {
	ret := _m.Called(invoice)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(service.InvoiceQR) []byte); ok {
		r0 = rf(invoice)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ParseInvoiceQR provides a mock function with given fields: qrData
func (_m *MockQRCodeService) ParseInvoiceQR(qrData string) (*service.InvoiceQR, error) {
	ret := _m.Called(qrData)

	var r0 *service.InvoiceQR
	if rf, ok := ret.Get(0).(func(string) *service.InvoiceQR); ok {
		r0 = rf(qrData)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.InvoiceQR)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
