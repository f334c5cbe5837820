package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock of QRCodeService with mockery-style expecters.
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateTrackingQR provides a mock function with given fields: shipmentDisplayID
func (_m *MockQRCodeService) GenerateTrackingQR(shipmentDisplayID string) ([]byte, error) {
	ret := _m.Called(shipmentDisplayID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateTrackingQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(shipmentDisplayID)
	}
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(shipmentDisplayID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(shipmentDisplayID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_GenerateTrackingQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateTrackingQR'
type MockQRCodeService_GenerateTrackingQR_Call struct {
	*mock.Call
}

// GenerateTrackingQR is a helper method to define mock.On call
//   - shipmentDisplayID string
func (_e *MockQRCodeService_Expecter) GenerateTrackingQR(shipmentDisplayID interface{}) *MockQRCodeService_GenerateTrackingQR_Call {
	return &MockQRCodeService_GenerateTrackingQR_Call{Call: _e.mock.On("GenerateTrackingQR", shipmentDisplayID)}
}

func (_c *MockQRCodeService_GenerateTrackingQR_Call) Run(run func(shipmentDisplayID string)) *MockQRCodeService_GenerateTrackingQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_GenerateTrackingQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateTrackingQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateTrackingQR_Call) RunAndReturn(run func(string) ([]byte, error)) *MockQRCodeService_GenerateTrackingQR_Call {
	_c.Call.Return(run)
	return _c
}

// ParseTrackingQR provides a mock function with given fields: qrData
func (_m *MockQRCodeService) ParseTrackingQR(qrData string) (string, error) {
	ret := _m.Called(qrData)

	if len(ret) == 0 {
		panic("no return value specified for ParseTrackingQR")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(qrData)
	}
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(qrData)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(qrData)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_ParseTrackingQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ParseTrackingQR'
type MockQRCodeService_ParseTrackingQR_Call struct {
	*mock.Call
}

// ParseTrackingQR is a helper method to define mock.On call
//   - qrData string
func (_e *MockQRCodeService_Expecter) ParseTrackingQR(qrData interface{}) *MockQRCodeService_ParseTrackingQR_Call {
	return &MockQRCodeService_ParseTrackingQR_Call{Call: _e.mock.On("ParseTrackingQR", qrData)}
}

func (_c *MockQRCodeService_ParseTrackingQR_Call) Run(run func(qrData string)) *MockQRCodeService_ParseTrackingQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_ParseTrackingQR_Call) Return(_a0 string, _a1 error) *MockQRCodeService_ParseTrackingQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_ParseTrackingQR_Call) RunAndReturn(run func(string) (string, error)) *MockQRCodeService_ParseTrackingQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
