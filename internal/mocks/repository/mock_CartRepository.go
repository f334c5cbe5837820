package repository

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockCartRepository is a testify mock of CartRepository with mockery-style expecters.
type MockCartRepository struct {
	mock.Mock
}

type MockCartRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCartRepository) EXPECT() *MockCartRepository_Expecter {
	return &MockCartRepository_Expecter{mock: &_m.Mock}
}

// FindByBuyer provides a mock function with given fields: ctx, buyerID
func (_m *MockCartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID)

	if len(ret) == 0 {
		panic("no return value specified for FindByBuyer")
	}

	var r0 *entity.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Cart, error)); ok {
		return rf(ctx, buyerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Cart); ok {
		r0 = rf(ctx, buyerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, buyerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCartRepository_FindByBuyer_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByBuyer'
type MockCartRepository_FindByBuyer_Call struct {
	*mock.Call
}

// FindByBuyer is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
func (_e *MockCartRepository_Expecter) FindByBuyer(ctx interface{}, buyerID interface{}) *MockCartRepository_FindByBuyer_Call {
	return &MockCartRepository_FindByBuyer_Call{Call: _e.mock.On("FindByBuyer", ctx, buyerID)}
}

func (_c *MockCartRepository_FindByBuyer_Call) Run(run func(ctx context.Context, buyerID uuid.UUID)) *MockCartRepository_FindByBuyer_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockCartRepository_FindByBuyer_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartRepository_FindByBuyer_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartRepository_FindByBuyer_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Cart, error)) *MockCartRepository_FindByBuyer_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function with given fields: ctx, cart
func (_m *MockCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	ret := _m.Called(ctx, cart)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Cart) error); ok {
		r0 = rf(ctx, cart)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCartRepository_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockCartRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - cart *entity.Cart
func (_e *MockCartRepository_Expecter) Save(ctx interface{}, cart interface{}) *MockCartRepository_Save_Call {
	return &MockCartRepository_Save_Call{Call: _e.mock.On("Save", ctx, cart)}
}

func (_c *MockCartRepository_Save_Call) Run(run func(ctx context.Context, cart *entity.Cart)) *MockCartRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Cart))
	})
	return _c
}

func (_c *MockCartRepository_Save_Call) Return(_a0 error) *MockCartRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCartRepository_Save_Call) RunAndReturn(run func(context.Context, *entity.Cart) error) *MockCartRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCartRepository creates a new instance of MockCartRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	mock := &MockCartRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
