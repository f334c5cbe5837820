package repository

import (
	"context"
	"github.com/stretchr/testify/mock"
)

// MockCounterRepository is a testify mock of CounterRepository with mockery-style expecters.
type MockCounterRepository struct {
	mock.Mock
}

type MockCounterRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCounterRepository) EXPECT() *MockCounterRepository_Expecter {
	return &MockCounterRepository_Expecter{mock: &_m.Mock}
}

// Next provides a mock function with given fields: ctx, name
func (_m *MockCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Next")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, name)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCounterRepository_Next_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Next'
type MockCounterRepository_Next_Call struct {
	*mock.Call
}

// Next is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockCounterRepository_Expecter) Next(ctx interface{}, name interface{}) *MockCounterRepository_Next_Call {
	return &MockCounterRepository_Next_Call{Call: _e.mock.On("Next", ctx, name)}
}

func (_c *MockCounterRepository_Next_Call) Run(run func(ctx context.Context, name string)) *MockCounterRepository_Next_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCounterRepository_Next_Call) Return(_a0 int64, _a1 error) *MockCounterRepository_Next_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCounterRepository_Next_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockCounterRepository_Next_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCounterRepository creates a new instance of MockCounterRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCounterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCounterRepository {
	mock := &MockCounterRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
