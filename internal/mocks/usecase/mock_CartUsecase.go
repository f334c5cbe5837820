package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockCartUsecase is a testify mock of CartUsecase with mockery-style expecters.
type MockCartUsecase struct {
	mock.Mock
}

type MockCartUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCartUsecase) EXPECT() *MockCartUsecase_Expecter {
	return &MockCartUsecase_Expecter{mock: &_m.Mock}
}

// GetCart provides a mock function with given fields: ctx, buyerID
func (_m *MockCartUsecase) GetCart(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID)

	if len(ret) == 0 {
		panic("no return value specified for GetCart")
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

// MockCartUsecase_GetCart_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCart'
type MockCartUsecase_GetCart_Call struct {
	*mock.Call
}

// GetCart is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
func (_e *MockCartUsecase_Expecter) GetCart(ctx interface{}, buyerID interface{}) *MockCartUsecase_GetCart_Call {
	return &MockCartUsecase_GetCart_Call{Call: _e.mock.On("GetCart", ctx, buyerID)}
}

func (_c *MockCartUsecase_GetCart_Call) Run(run func(ctx context.Context, buyerID uuid.UUID)) *MockCartUsecase_GetCart_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockCartUsecase_GetCart_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_GetCart_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_GetCart_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Cart, error)) *MockCartUsecase_GetCart_Call {
	_c.Call.Return(run)
	return _c
}

// AddItem provides a mock function with given fields: ctx, buyerID, productID, quantity
func (_m *MockCartUsecase) AddItem(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID, productID, quantity)

	if len(ret) == 0 {
		panic("no return value specified for AddItem")
	}

	var r0 *entity.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, int) (*entity.Cart, error)); ok {
		return rf(ctx, buyerID, productID, quantity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, int) *entity.Cart); ok {
		r0 = rf(ctx, buyerID, productID, quantity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, int) error); ok {
		r1 = rf(ctx, buyerID, productID, quantity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCartUsecase_AddItem_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddItem'
type MockCartUsecase_AddItem_Call struct {
	*mock.Call
}

// AddItem is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - productID uuid.UUID
//   - quantity int
func (_e *MockCartUsecase_Expecter) AddItem(ctx interface{}, buyerID interface{}, productID interface{}, quantity interface{}) *MockCartUsecase_AddItem_Call {
	return &MockCartUsecase_AddItem_Call{Call: _e.mock.On("AddItem", ctx, buyerID, productID, quantity)}
}

func (_c *MockCartUsecase_AddItem_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID, quantity int)) *MockCartUsecase_AddItem_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(int))
	})
	return _c
}

func (_c *MockCartUsecase_AddItem_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_AddItem_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_AddItem_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, int) (*entity.Cart, error)) *MockCartUsecase_AddItem_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateItem provides a mock function with given fields: ctx, buyerID, productID, quantity
func (_m *MockCartUsecase) UpdateItem(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID, productID, quantity)

	if len(ret) == 0 {
		panic("no return value specified for UpdateItem")
	}

	var r0 *entity.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, int) (*entity.Cart, error)); ok {
		return rf(ctx, buyerID, productID, quantity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, int) *entity.Cart); ok {
		r0 = rf(ctx, buyerID, productID, quantity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, int) error); ok {
		r1 = rf(ctx, buyerID, productID, quantity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCartUsecase_UpdateItem_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateItem'
type MockCartUsecase_UpdateItem_Call struct {
	*mock.Call
}

// UpdateItem is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - productID uuid.UUID
//   - quantity int
func (_e *MockCartUsecase_Expecter) UpdateItem(ctx interface{}, buyerID interface{}, productID interface{}, quantity interface{}) *MockCartUsecase_UpdateItem_Call {
	return &MockCartUsecase_UpdateItem_Call{Call: _e.mock.On("UpdateItem", ctx, buyerID, productID, quantity)}
}

func (_c *MockCartUsecase_UpdateItem_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID, quantity int)) *MockCartUsecase_UpdateItem_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(int))
	})
	return _c
}

func (_c *MockCartUsecase_UpdateItem_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_UpdateItem_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_UpdateItem_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, int) (*entity.Cart, error)) *MockCartUsecase_UpdateItem_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveItem provides a mock function with given fields: ctx, buyerID, productID
func (_m *MockCartUsecase) RemoveItem(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID, productID)

	if len(ret) == 0 {
		panic("no return value specified for RemoveItem")
	}

	var r0 *entity.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Cart, error)); ok {
		return rf(ctx, buyerID, productID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Cart); ok {
		r0 = rf(ctx, buyerID, productID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, buyerID, productID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCartUsecase_RemoveItem_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveItem'
type MockCartUsecase_RemoveItem_Call struct {
	*mock.Call
}

// RemoveItem is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - productID uuid.UUID
func (_e *MockCartUsecase_Expecter) RemoveItem(ctx interface{}, buyerID interface{}, productID interface{}) *MockCartUsecase_RemoveItem_Call {
	return &MockCartUsecase_RemoveItem_Call{Call: _e.mock.On("RemoveItem", ctx, buyerID, productID)}
}

func (_c *MockCartUsecase_RemoveItem_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, productID uuid.UUID)) *MockCartUsecase_RemoveItem_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockCartUsecase_RemoveItem_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_RemoveItem_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_RemoveItem_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Cart, error)) *MockCartUsecase_RemoveItem_Call {
	_c.Call.Return(run)
	return _c
}

// Clear provides a mock function with given fields: ctx, buyerID
func (_m *MockCartUsecase) Clear(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID)

	if len(ret) == 0 {
		panic("no return value specified for Clear")
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

// MockCartUsecase_Clear_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Clear'
type MockCartUsecase_Clear_Call struct {
	*mock.Call
}

// Clear is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
func (_e *MockCartUsecase_Expecter) Clear(ctx interface{}, buyerID interface{}) *MockCartUsecase_Clear_Call {
	return &MockCartUsecase_Clear_Call{Call: _e.mock.On("Clear", ctx, buyerID)}
}

func (_c *MockCartUsecase_Clear_Call) Run(run func(ctx context.Context, buyerID uuid.UUID)) *MockCartUsecase_Clear_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockCartUsecase_Clear_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_Clear_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_Clear_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Cart, error)) *MockCartUsecase_Clear_Call {
	_c.Call.Return(run)
	return _c
}

// ApplyPromo provides a mock function with given fields: ctx, buyerID, code
func (_m *MockCartUsecase) ApplyPromo(ctx context.Context, buyerID uuid.UUID, code string) (*entity.Cart, error) {
	ret := _m.Called(ctx, buyerID, code)

	if len(ret) == 0 {
		panic("no return value specified for ApplyPromo")
	}

	var r0 *entity.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) (*entity.Cart, error)); ok {
		return rf(ctx, buyerID, code)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) *entity.Cart); ok {
		r0 = rf(ctx, buyerID, code)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, buyerID, code)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCartUsecase_ApplyPromo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ApplyPromo'
type MockCartUsecase_ApplyPromo_Call struct {
	*mock.Call
}

// ApplyPromo is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - code string
func (_e *MockCartUsecase_Expecter) ApplyPromo(ctx interface{}, buyerID interface{}, code interface{}) *MockCartUsecase_ApplyPromo_Call {
	return &MockCartUsecase_ApplyPromo_Call{Call: _e.mock.On("ApplyPromo", ctx, buyerID, code)}
}

func (_c *MockCartUsecase_ApplyPromo_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, code string)) *MockCartUsecase_ApplyPromo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(string))
	})
	return _c
}

func (_c *MockCartUsecase_ApplyPromo_Call) Return(_a0 *entity.Cart, _a1 error) *MockCartUsecase_ApplyPromo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCartUsecase_ApplyPromo_Call) RunAndReturn(run func(context.Context, uuid.UUID, string) (*entity.Cart, error)) *MockCartUsecase_ApplyPromo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCartUsecase creates a new instance of MockCartUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCartUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartUsecase {
	mock := &MockCartUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
