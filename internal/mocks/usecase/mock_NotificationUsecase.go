package usecase

import (
	"context"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/service"
)

// MockNotificationUsecase is a testify mock of NotificationUsecase with mockery-style expecters.
type MockNotificationUsecase struct {
	mock.Mock
}

type MockNotificationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationUsecase) EXPECT() *MockNotificationUsecase_Expecter {
	return &MockNotificationUsecase_Expecter{mock: &_m.Mock}
}

// HandleEvent provides a mock function with given fields: ctx, event
func (_m *MockNotificationUsecase) HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for HandleEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.MarketplaceEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockNotificationUsecase_HandleEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HandleEvent'
type MockNotificationUsecase_HandleEvent_Call struct {
	*mock.Call
}

// HandleEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event *service.MarketplaceEvent
func (_e *MockNotificationUsecase_Expecter) HandleEvent(ctx interface{}, event interface{}) *MockNotificationUsecase_HandleEvent_Call {
	return &MockNotificationUsecase_HandleEvent_Call{Call: _e.mock.On("HandleEvent", ctx, event)}
}

func (_c *MockNotificationUsecase_HandleEvent_Call) Run(run func(ctx context.Context, event *service.MarketplaceEvent)) *MockNotificationUsecase_HandleEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.MarketplaceEvent))
	})
	return _c
}

func (_c *MockNotificationUsecase_HandleEvent_Call) Return(_a0 error) *MockNotificationUsecase_HandleEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockNotificationUsecase_HandleEvent_Call) RunAndReturn(run func(context.Context, *service.MarketplaceEvent) error) *MockNotificationUsecase_HandleEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationUsecase creates a new instance of MockNotificationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationUsecase {
	mock := &MockNotificationUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
