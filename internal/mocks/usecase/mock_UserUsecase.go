package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"
)

// MockUserUsecase is a testify mock of UserUsecase with mockery-style expecters.
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.RegisterInput) (*entity.User, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.RegisterInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.RegisterInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockUserUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.RegisterInput
func (_e *MockUserUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockUserUsecase_Register_Call {
	return &MockUserUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockUserUsecase_Register_Call) Run(run func(ctx context.Context, input usecase.RegisterInput)) *MockUserUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.RegisterInput))
	})
	return _c
}

func (_c *MockUserUsecase_Register_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Register_Call) RunAndReturn(run func(context.Context, usecase.RegisterInput) (*entity.User, error)) *MockUserUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.LoginOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.LoginInput) *usecase.LoginOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.LoginOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockUserUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - input usecase.LoginInput
func (_e *MockUserUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockUserUsecase_Login_Call {
	return &MockUserUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockUserUsecase_Login_Call) Run(run func(ctx context.Context, input usecase.LoginInput)) *MockUserUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.LoginInput))
	})
	return _c
}

func (_c *MockUserUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockUserUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Login_Call) RunAndReturn(run func(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error)) *MockUserUsecase_Login_Call {
	_c.Call.Return(run)
	return _c
}

// GetProfile provides a mock function with given fields: ctx, userID
func (_m *MockUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.User); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockUserUsecase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockUserUsecase_Expecter) GetProfile(ctx interface{}, userID interface{}) *MockUserUsecase_GetProfile_Call {
	return &MockUserUsecase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, userID)}
}

func (_c *MockUserUsecase_GetProfile_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockUserUsecase_GetProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockUserUsecase_GetProfile_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_GetProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_GetProfile_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockUserUsecase_GetProfile_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	mock := &MockUserUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
