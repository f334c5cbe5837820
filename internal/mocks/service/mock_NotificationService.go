package service

import (
	"context"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/service"
)

// MockNotificationService is a testify mock of NotificationService with mockery-style expecters.
type MockNotificationService struct {
	mock.Mock
}

type MockNotificationService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationService) EXPECT() *MockNotificationService_Expecter {
	return &MockNotificationService_Expecter{mock: &_m.Mock}
}

// SendBatchNotification provides a mock function with given fields: ctx, tokens, msg
func (_m *MockNotificationService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	ret := _m.Called(ctx, tokens, msg)

	if len(ret) == 0 {
		panic("no return value specified for SendBatchNotification")
	}

	var r0 *service.BatchResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []string, service.PushMessage) (*service.BatchResult, error)); ok {
		return rf(ctx, tokens, msg)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string, service.PushMessage) *service.BatchResult); ok {
		r0 = rf(ctx, tokens, msg)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.BatchResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []string, service.PushMessage) error); ok {
		r1 = rf(ctx, tokens, msg)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_SendBatchNotification_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendBatchNotification'
type MockNotificationService_SendBatchNotification_Call struct {
	*mock.Call
}

// SendBatchNotification is a helper method to define mock.On call
//   - ctx context.Context
//   - tokens []string
//   - msg service.PushMessage
func (_e *MockNotificationService_Expecter) SendBatchNotification(ctx interface{}, tokens interface{}, msg interface{}) *MockNotificationService_SendBatchNotification_Call {
	return &MockNotificationService_SendBatchNotification_Call{Call: _e.mock.On("SendBatchNotification", ctx, tokens, msg)}
}

func (_c *MockNotificationService_SendBatchNotification_Call) Run(run func(ctx context.Context, tokens []string, msg service.PushMessage)) *MockNotificationService_SendBatchNotification_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string), args[2].(service.PushMessage))
	})
	return _c
}

func (_c *MockNotificationService_SendBatchNotification_Call) Return(_a0 *service.BatchResult, _a1 error) *MockNotificationService_SendBatchNotification_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_SendBatchNotification_Call) RunAndReturn(run func(context.Context, []string, service.PushMessage) (*service.BatchResult, error)) *MockNotificationService_SendBatchNotification_Call {
	_c.Call.Return(run)
	return _c
}

// SendSingleNotification provides a mock function with given fields: ctx, token, msg
func (_m *MockNotificationService) SendSingleNotification(ctx context.Context, token string, msg service.PushMessage) error {
	ret := _m.Called(ctx, token, msg)

	if len(ret) == 0 {
		panic("no return value specified for SendSingleNotification")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, service.PushMessage) error); ok {
		r0 = rf(ctx, token, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockNotificationService_SendSingleNotification_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendSingleNotification'
type MockNotificationService_SendSingleNotification_Call struct {
	*mock.Call
}

// SendSingleNotification is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
//   - msg service.PushMessage
func (_e *MockNotificationService_Expecter) SendSingleNotification(ctx interface{}, token interface{}, msg interface{}) *MockNotificationService_SendSingleNotification_Call {
	return &MockNotificationService_SendSingleNotification_Call{Call: _e.mock.On("SendSingleNotification", ctx, token, msg)}
}

func (_c *MockNotificationService_SendSingleNotification_Call) Run(run func(ctx context.Context, token string, msg service.PushMessage)) *MockNotificationService_SendSingleNotification_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(service.PushMessage))
	})
	return _c
}

func (_c *MockNotificationService_SendSingleNotification_Call) Return(_a0 error) *MockNotificationService_SendSingleNotification_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockNotificationService_SendSingleNotification_Call) RunAndReturn(run func(context.Context, string, service.PushMessage) error) *MockNotificationService_SendSingleNotification_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationService creates a new instance of MockNotificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationService {
	mock := &MockNotificationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
