package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"
)

// MockDeviceUsecase is a testify mock of DeviceUsecase with mockery-style expecters.
type MockDeviceUsecase struct {
	mock.Mock
}

type MockDeviceUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceUsecase) EXPECT() *MockDeviceUsecase_Expecter {
	return &MockDeviceUsecase_Expecter{mock: &_m.Mock}
}

// RegisterDevice provides a mock function with given fields: ctx, userID, deviceInfo
func (_m *MockDeviceUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID, deviceInfo)

	if len(ret) == 0 {
		panic("no return value specified for RegisterDevice")
	}

	var r0 *entity.UserDevice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.DeviceInfo) (*entity.UserDevice, error)); ok {
		return rf(ctx, userID, deviceInfo)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.DeviceInfo) *entity.UserDevice); ok {
		r0 = rf(ctx, userID, deviceInfo)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserDevice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.DeviceInfo) error); ok {
		r1 = rf(ctx, userID, deviceInfo)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceUsecase_RegisterDevice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RegisterDevice'
type MockDeviceUsecase_RegisterDevice_Call struct {
	*mock.Call
}

// RegisterDevice is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceInfo *usecase.DeviceInfo
func (_e *MockDeviceUsecase_Expecter) RegisterDevice(ctx interface{}, userID interface{}, deviceInfo interface{}) *MockDeviceUsecase_RegisterDevice_Call {
	return &MockDeviceUsecase_RegisterDevice_Call{Call: _e.mock.On("RegisterDevice", ctx, userID, deviceInfo)}
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo)) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.DeviceInfo))
	})
	return _c
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) Return(_a0 *entity.UserDevice, _a1 error) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.DeviceInfo) (*entity.UserDevice, error)) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateFCMToken provides a mock function with given fields: ctx, userID, deviceID, fcmToken
func (_m *MockDeviceUsecase) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	ret := _m.Called(ctx, userID, deviceID, fcmToken)

	if len(ret) == 0 {
		panic("no return value specified for UpdateFCMToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, string) error); ok {
		r0 = rf(ctx, userID, deviceID, fcmToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_UpdateFCMToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateFCMToken'
type MockDeviceUsecase_UpdateFCMToken_Call struct {
	*mock.Call
}

// UpdateFCMToken is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceID uuid.UUID
//   - fcmToken string
func (_e *MockDeviceUsecase_Expecter) UpdateFCMToken(ctx interface{}, userID interface{}, deviceID interface{}, fcmToken interface{}) *MockDeviceUsecase_UpdateFCMToken_Call {
	return &MockDeviceUsecase_UpdateFCMToken_Call{Call: _e.mock.On("UpdateFCMToken", ctx, userID, deviceID, fcmToken)}
}

func (_c *MockDeviceUsecase_UpdateFCMToken_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string)) *MockDeviceUsecase_UpdateFCMToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(string))
	})
	return _c
}

func (_c *MockDeviceUsecase_UpdateFCMToken_Call) Return(_a0 error) *MockDeviceUsecase_UpdateFCMToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_UpdateFCMToken_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, string) error) *MockDeviceUsecase_UpdateFCMToken_Call {
	_c.Call.Return(run)
	return _c
}

// GetUserDevices provides a mock function with given fields: ctx, userID
func (_m *MockDeviceUsecase) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetUserDevices")
	}

	var r0 []*entity.UserDevice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.UserDevice, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.UserDevice); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.UserDevice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceUsecase_GetUserDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetUserDevices'
type MockDeviceUsecase_GetUserDevices_Call struct {
	*mock.Call
}

// GetUserDevices is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockDeviceUsecase_Expecter) GetUserDevices(ctx interface{}, userID interface{}) *MockDeviceUsecase_GetUserDevices_Call {
	return &MockDeviceUsecase_GetUserDevices_Call{Call: _e.mock.On("GetUserDevices", ctx, userID)}
}

func (_c *MockDeviceUsecase_GetUserDevices_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockDeviceUsecase_GetUserDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceUsecase_GetUserDevices_Call) Return(_a0 []*entity.UserDevice, _a1 error) *MockDeviceUsecase_GetUserDevices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceUsecase_GetUserDevices_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.UserDevice, error)) *MockDeviceUsecase_GetUserDevices_Call {
	_c.Call.Return(run)
	return _c
}

// DeactivateDevice provides a mock function with given fields: ctx, userID, deviceID
func (_m *MockDeviceUsecase) DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	ret := _m.Called(ctx, userID, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for DeactivateDevice")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, deviceID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_DeactivateDevice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeactivateDevice'
type MockDeviceUsecase_DeactivateDevice_Call struct {
	*mock.Call
}

// DeactivateDevice is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceID uuid.UUID
func (_e *MockDeviceUsecase_Expecter) DeactivateDevice(ctx interface{}, userID interface{}, deviceID interface{}) *MockDeviceUsecase_DeactivateDevice_Call {
	return &MockDeviceUsecase_DeactivateDevice_Call{Call: _e.mock.On("DeactivateDevice", ctx, userID, deviceID)}
}

func (_c *MockDeviceUsecase_DeactivateDevice_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID)) *MockDeviceUsecase_DeactivateDevice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceUsecase_DeactivateDevice_Call) Return(_a0 error) *MockDeviceUsecase_DeactivateDevice_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_DeactivateDevice_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockDeviceUsecase_DeactivateDevice_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceUsecase creates a new instance of MockDeviceUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceUsecase {
	mock := &MockDeviceUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
