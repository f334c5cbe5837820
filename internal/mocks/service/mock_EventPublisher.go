package service

import (
	"context"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/service"
)

// MockEventPublisher is a testify mock of EventPublisher with mockery-style expecters.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishMarketplaceEvent provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishMarketplaceEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.MarketplaceEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_PublishMarketplaceEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishMarketplaceEvent'
type MockEventPublisher_PublishMarketplaceEvent_Call struct {
	*mock.Call
}

// PublishMarketplaceEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event *service.MarketplaceEvent
func (_e *MockEventPublisher_Expecter) PublishMarketplaceEvent(ctx interface{}, event interface{}) *MockEventPublisher_PublishMarketplaceEvent_Call {
	return &MockEventPublisher_PublishMarketplaceEvent_Call{Call: _e.mock.On("PublishMarketplaceEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishMarketplaceEvent_Call) Run(run func(ctx context.Context, event *service.MarketplaceEvent)) *MockEventPublisher_PublishMarketplaceEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.MarketplaceEvent))
	})
	return _c
}

func (_c *MockEventPublisher_PublishMarketplaceEvent_Call) Return(_a0 error) *MockEventPublisher_PublishMarketplaceEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_PublishMarketplaceEvent_Call) RunAndReturn(run func(context.Context, *service.MarketplaceEvent) error) *MockEventPublisher_PublishMarketplaceEvent_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields: 
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	mock := &MockEventPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
