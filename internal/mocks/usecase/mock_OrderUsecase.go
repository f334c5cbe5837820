package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"
)

// MockOrderUsecase is a testify mock of OrderUsecase with mockery-style expecters.
type MockOrderUsecase struct {
	mock.Mock
}

type MockOrderUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderUsecase) EXPECT() *MockOrderUsecase_Expecter {
	return &MockOrderUsecase_Expecter{mock: &_m.Mock}
}

// PlaceOrder provides a mock function with given fields: ctx, buyerID, input
func (_m *MockOrderUsecase) PlaceOrder(ctx context.Context, buyerID uuid.UUID, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	ret := _m.Called(ctx, buyerID, input)

	if len(ret) == 0 {
		panic("no return value specified for PlaceOrder")
	}

	var r0 *usecase.PlaceOrderOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error)); ok {
		return rf(ctx, buyerID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.PlaceOrderInput) *usecase.PlaceOrderOutput); ok {
		r0 = rf(ctx, buyerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.PlaceOrderOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, usecase.PlaceOrderInput) error); ok {
		r1 = rf(ctx, buyerID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderUsecase_PlaceOrder_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PlaceOrder'
type MockOrderUsecase_PlaceOrder_Call struct {
	*mock.Call
}

// PlaceOrder is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - input usecase.PlaceOrderInput
func (_e *MockOrderUsecase_Expecter) PlaceOrder(ctx interface{}, buyerID interface{}, input interface{}) *MockOrderUsecase_PlaceOrder_Call {
	return &MockOrderUsecase_PlaceOrder_Call{Call: _e.mock.On("PlaceOrder", ctx, buyerID, input)}
}

func (_c *MockOrderUsecase_PlaceOrder_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, input usecase.PlaceOrderInput)) *MockOrderUsecase_PlaceOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(usecase.PlaceOrderInput))
	})
	return _c
}

func (_c *MockOrderUsecase_PlaceOrder_Call) Return(_a0 *usecase.PlaceOrderOutput, _a1 error) *MockOrderUsecase_PlaceOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderUsecase_PlaceOrder_Call) RunAndReturn(run func(context.Context, uuid.UUID, usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error)) *MockOrderUsecase_PlaceOrder_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateOrderStatus provides a mock function with given fields: ctx, sellerID, orderID, status
func (_m *MockOrderUsecase) UpdateOrderStatus(ctx context.Context, sellerID uuid.UUID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	ret := _m.Called(ctx, sellerID, orderID, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOrderStatus")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, entity.OrderStatus) (*entity.Order, error)); ok {
		return rf(ctx, sellerID, orderID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, entity.OrderStatus) *entity.Order); ok {
		r0 = rf(ctx, sellerID, orderID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, entity.OrderStatus) error); ok {
		r1 = rf(ctx, sellerID, orderID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderUsecase_UpdateOrderStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateOrderStatus'
type MockOrderUsecase_UpdateOrderStatus_Call struct {
	*mock.Call
}

// UpdateOrderStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - orderID uuid.UUID
//   - status entity.OrderStatus
func (_e *MockOrderUsecase_Expecter) UpdateOrderStatus(ctx interface{}, sellerID interface{}, orderID interface{}, status interface{}) *MockOrderUsecase_UpdateOrderStatus_Call {
	return &MockOrderUsecase_UpdateOrderStatus_Call{Call: _e.mock.On("UpdateOrderStatus", ctx, sellerID, orderID, status)}
}

func (_c *MockOrderUsecase_UpdateOrderStatus_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, orderID uuid.UUID, status entity.OrderStatus)) *MockOrderUsecase_UpdateOrderStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(entity.OrderStatus))
	})
	return _c
}

func (_c *MockOrderUsecase_UpdateOrderStatus_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderUsecase_UpdateOrderStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderUsecase_UpdateOrderStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, entity.OrderStatus) (*entity.Order, error)) *MockOrderUsecase_UpdateOrderStatus_Call {
	_c.Call.Return(run)
	return _c
}

// GetOrder provides a mock function with given fields: ctx, userID, orderID
func (_m *MockOrderUsecase) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, userID, orderID)

	if len(ret) == 0 {
		panic("no return value specified for GetOrder")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Order, error)); ok {
		return rf(ctx, userID, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Order); ok {
		r0 = rf(ctx, userID, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderUsecase_GetOrder_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetOrder'
type MockOrderUsecase_GetOrder_Call struct {
	*mock.Call
}

// GetOrder is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - orderID uuid.UUID
func (_e *MockOrderUsecase_Expecter) GetOrder(ctx interface{}, userID interface{}, orderID interface{}) *MockOrderUsecase_GetOrder_Call {
	return &MockOrderUsecase_GetOrder_Call{Call: _e.mock.On("GetOrder", ctx, userID, orderID)}
}

func (_c *MockOrderUsecase_GetOrder_Call) Run(run func(ctx context.Context, userID uuid.UUID, orderID uuid.UUID)) *MockOrderUsecase_GetOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockOrderUsecase_GetOrder_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderUsecase_GetOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderUsecase_GetOrder_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Order, error)) *MockOrderUsecase_GetOrder_Call {
	_c.Call.Return(run)
	return _c
}

// ListBuyerOrders provides a mock function with given fields: ctx, buyerID, filter
func (_m *MockOrderUsecase) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) (*usecase.Page[*entity.Order], error) {
	ret := _m.Called(ctx, buyerID, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListBuyerOrders")
	}

	var r0 *usecase.Page[*entity.Order]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) (*usecase.Page[*entity.Order], error)); ok {
		return rf(ctx, buyerID, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) *usecase.Page[*entity.Order]); ok {
		r0 = rf(ctx, buyerID, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.Page[*entity.Order])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.OrderFilter) error); ok {
		r1 = rf(ctx, buyerID, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderUsecase_ListBuyerOrders_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBuyerOrders'
type MockOrderUsecase_ListBuyerOrders_Call struct {
	*mock.Call
}

// ListBuyerOrders is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - filter entity.OrderFilter
func (_e *MockOrderUsecase_Expecter) ListBuyerOrders(ctx interface{}, buyerID interface{}, filter interface{}) *MockOrderUsecase_ListBuyerOrders_Call {
	return &MockOrderUsecase_ListBuyerOrders_Call{Call: _e.mock.On("ListBuyerOrders", ctx, buyerID, filter)}
}

func (_c *MockOrderUsecase_ListBuyerOrders_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter)) *MockOrderUsecase_ListBuyerOrders_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.OrderFilter))
	})
	return _c
}

func (_c *MockOrderUsecase_ListBuyerOrders_Call) Return(_a0 *usecase.Page[*entity.Order], _a1 error) *MockOrderUsecase_ListBuyerOrders_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderUsecase_ListBuyerOrders_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.OrderFilter) (*usecase.Page[*entity.Order], error)) *MockOrderUsecase_ListBuyerOrders_Call {
	_c.Call.Return(run)
	return _c
}

// ListSellerOrders provides a mock function with given fields: ctx, sellerID, filter
func (_m *MockOrderUsecase) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) (*usecase.Page[*entity.Order], error) {
	ret := _m.Called(ctx, sellerID, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListSellerOrders")
	}

	var r0 *usecase.Page[*entity.Order]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) (*usecase.Page[*entity.Order], error)); ok {
		return rf(ctx, sellerID, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) *usecase.Page[*entity.Order]); ok {
		r0 = rf(ctx, sellerID, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.Page[*entity.Order])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.OrderFilter) error); ok {
		r1 = rf(ctx, sellerID, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderUsecase_ListSellerOrders_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListSellerOrders'
type MockOrderUsecase_ListSellerOrders_Call struct {
	*mock.Call
}

// ListSellerOrders is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - filter entity.OrderFilter
func (_e *MockOrderUsecase_Expecter) ListSellerOrders(ctx interface{}, sellerID interface{}, filter interface{}) *MockOrderUsecase_ListSellerOrders_Call {
	return &MockOrderUsecase_ListSellerOrders_Call{Call: _e.mock.On("ListSellerOrders", ctx, sellerID, filter)}
}

func (_c *MockOrderUsecase_ListSellerOrders_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter)) *MockOrderUsecase_ListSellerOrders_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.OrderFilter))
	})
	return _c
}

func (_c *MockOrderUsecase_ListSellerOrders_Call) Return(_a0 *usecase.Page[*entity.Order], _a1 error) *MockOrderUsecase_ListSellerOrders_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderUsecase_ListSellerOrders_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.OrderFilter) (*usecase.Page[*entity.Order], error)) *MockOrderUsecase_ListSellerOrders_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOrderUsecase creates a new instance of MockOrderUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOrderUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderUsecase {
	mock := &MockOrderUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
