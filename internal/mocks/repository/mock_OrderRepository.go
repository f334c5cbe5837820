package repository

import (
	"context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockOrderRepository is a testify mock of OrderRepository with mockery-style expecters.
type MockOrderRepository struct {
	mock.Mock
}

type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, order
func (_m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockOrderRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - order *entity.Order
func (_e *MockOrderRepository_Expecter) Create(ctx interface{}, order interface{}) *MockOrderRepository_Create_Call {
	return &MockOrderRepository_Create_Call{Call: _e.mock.On("Create", ctx, order)}
}

func (_c *MockOrderRepository_Create_Call) Run(run func(ctx context.Context, order *entity.Order)) *MockOrderRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Order))
	})
	return _c
}

func (_c *MockOrderRepository_Create_Call) Return(_a0 error) *MockOrderRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOrderRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Order) error) *MockOrderRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Order, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Order); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockOrderRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockOrderRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockOrderRepository_FindByID_Call {
	return &MockOrderRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockOrderRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockOrderRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockOrderRepository_FindByID_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Order, error)) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByIdempotencyKey provides a mock function with given fields: ctx, buyerID, key
func (_m *MockOrderRepository) FindByIdempotencyKey(ctx context.Context, buyerID uuid.UUID, key string) (*entity.Order, error) {
	ret := _m.Called(ctx, buyerID, key)

	if len(ret) == 0 {
		panic("no return value specified for FindByIdempotencyKey")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) (*entity.Order, error)); ok {
		return rf(ctx, buyerID, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) *entity.Order); ok {
		r0 = rf(ctx, buyerID, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, buyerID, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindByIdempotencyKey_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByIdempotencyKey'
type MockOrderRepository_FindByIdempotencyKey_Call struct {
	*mock.Call
}

// FindByIdempotencyKey is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - key string
func (_e *MockOrderRepository_Expecter) FindByIdempotencyKey(ctx interface{}, buyerID interface{}, key interface{}) *MockOrderRepository_FindByIdempotencyKey_Call {
	return &MockOrderRepository_FindByIdempotencyKey_Call{Call: _e.mock.On("FindByIdempotencyKey", ctx, buyerID, key)}
}

func (_c *MockOrderRepository_FindByIdempotencyKey_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, key string)) *MockOrderRepository_FindByIdempotencyKey_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(string))
	})
	return _c
}

func (_c *MockOrderRepository_FindByIdempotencyKey_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderRepository_FindByIdempotencyKey_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_FindByIdempotencyKey_Call) RunAndReturn(run func(context.Context, uuid.UUID, string) (*entity.Order, error)) *MockOrderRepository_FindByIdempotencyKey_Call {
	_c.Call.Return(run)
	return _c
}

// ListByBuyer provides a mock function with given fields: ctx, buyerID, filter
func (_m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	ret := _m.Called(ctx, buyerID, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListByBuyer")
	}

	var r0 []*entity.Order
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) ([]*entity.Order, int64, error)); ok {
		return rf(ctx, buyerID, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) []*entity.Order); ok {
		r0 = rf(ctx, buyerID, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.OrderFilter) int64); ok {
		r1 = rf(ctx, buyerID, filter)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID, entity.OrderFilter) error); ok {
		r2 = rf(ctx, buyerID, filter)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockOrderRepository_ListByBuyer_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByBuyer'
type MockOrderRepository_ListByBuyer_Call struct {
	*mock.Call
}

// ListByBuyer is a helper method to define mock.On call
//   - ctx context.Context
//   - buyerID uuid.UUID
//   - filter entity.OrderFilter
func (_e *MockOrderRepository_Expecter) ListByBuyer(ctx interface{}, buyerID interface{}, filter interface{}) *MockOrderRepository_ListByBuyer_Call {
	return &MockOrderRepository_ListByBuyer_Call{Call: _e.mock.On("ListByBuyer", ctx, buyerID, filter)}
}

func (_c *MockOrderRepository_ListByBuyer_Call) Run(run func(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter)) *MockOrderRepository_ListByBuyer_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.OrderFilter))
	})
	return _c
}

func (_c *MockOrderRepository_ListByBuyer_Call) Return(_a0 []*entity.Order, _a1 int64, _a2 error) *MockOrderRepository_ListByBuyer_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockOrderRepository_ListByBuyer_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.OrderFilter) ([]*entity.Order, int64, error)) *MockOrderRepository_ListByBuyer_Call {
	_c.Call.Return(run)
	return _c
}

// ListBySeller provides a mock function with given fields: ctx, sellerID, filter
func (_m *MockOrderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	ret := _m.Called(ctx, sellerID, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListBySeller")
	}

	var r0 []*entity.Order
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) ([]*entity.Order, int64, error)); ok {
		return rf(ctx, sellerID, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderFilter) []*entity.Order); ok {
		r0 = rf(ctx, sellerID, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Order)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.OrderFilter) int64); ok {
		r1 = rf(ctx, sellerID, filter)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID, entity.OrderFilter) error); ok {
		r2 = rf(ctx, sellerID, filter)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockOrderRepository_ListBySeller_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBySeller'
type MockOrderRepository_ListBySeller_Call struct {
	*mock.Call
}

// ListBySeller is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - filter entity.OrderFilter
func (_e *MockOrderRepository_Expecter) ListBySeller(ctx interface{}, sellerID interface{}, filter interface{}) *MockOrderRepository_ListBySeller_Call {
	return &MockOrderRepository_ListBySeller_Call{Call: _e.mock.On("ListBySeller", ctx, sellerID, filter)}
}

func (_c *MockOrderRepository_ListBySeller_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter)) *MockOrderRepository_ListBySeller_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.OrderFilter))
	})
	return _c
}

func (_c *MockOrderRepository_ListBySeller_Call) Return(_a0 []*entity.Order, _a1 int64, _a2 error) *MockOrderRepository_ListBySeller_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockOrderRepository_ListBySeller_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.OrderFilter) ([]*entity.Order, int64, error)) *MockOrderRepository_ListBySeller_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateStatus provides a mock function with given fields: ctx, id, status
func (_m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	ret := _m.Called(ctx, id, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.OrderStatus) error); ok {
		r0 = rf(ctx, id, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_UpdateStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateStatus'
type MockOrderRepository_UpdateStatus_Call struct {
	*mock.Call
}

// UpdateStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - status entity.OrderStatus
func (_e *MockOrderRepository_Expecter) UpdateStatus(ctx interface{}, id interface{}, status interface{}) *MockOrderRepository_UpdateStatus_Call {
	return &MockOrderRepository_UpdateStatus_Call{Call: _e.mock.On("UpdateStatus", ctx, id, status)}
}

func (_c *MockOrderRepository_UpdateStatus_Call) Run(run func(ctx context.Context, id uuid.UUID, status entity.OrderStatus)) *MockOrderRepository_UpdateStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.OrderStatus))
	})
	return _c
}

func (_c *MockOrderRepository_UpdateStatus_Call) Return(_a0 error) *MockOrderRepository_UpdateStatus_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockOrderRepository_UpdateStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.OrderStatus) error) *MockOrderRepository_UpdateStatus_Call {
	_c.Call.Return(run)
	return _c
}

// CountByStatus provides a mock function with given fields: ctx, sellerID
func (_m *MockOrderRepository) CountByStatus(ctx context.Context, sellerID uuid.UUID) (map[entity.OrderStatus]int64, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for CountByStatus")
	}

	var r0 map[entity.OrderStatus]int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (map[entity.OrderStatus]int64, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) map[entity.OrderStatus]int64); ok {
		r0 = rf(ctx, sellerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[entity.OrderStatus]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_CountByStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountByStatus'
type MockOrderRepository_CountByStatus_Call struct {
	*mock.Call
}

// CountByStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
func (_e *MockOrderRepository_Expecter) CountByStatus(ctx interface{}, sellerID interface{}) *MockOrderRepository_CountByStatus_Call {
	return &MockOrderRepository_CountByStatus_Call{Call: _e.mock.On("CountByStatus", ctx, sellerID)}
}

func (_c *MockOrderRepository_CountByStatus_Call) Run(run func(ctx context.Context, sellerID uuid.UUID)) *MockOrderRepository_CountByStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockOrderRepository_CountByStatus_Call) Return(_a0 map[entity.OrderStatus]int64, _a1 error) *MockOrderRepository_CountByStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_CountByStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID) (map[entity.OrderStatus]int64, error)) *MockOrderRepository_CountByStatus_Call {
	_c.Call.Return(run)
	return _c
}

// SumDeliveredRevenue provides a mock function with given fields: ctx, sellerID
func (_m *MockOrderRepository) SumDeliveredRevenue(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for SumDeliveredRevenue")
	}

	var r0 decimal.Decimal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (decimal.Decimal, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) decimal.Decimal); ok {
		r0 = rf(ctx, sellerID)
	} else {
		r0 = ret.Get(0).(decimal.Decimal)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_SumDeliveredRevenue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SumDeliveredRevenue'
type MockOrderRepository_SumDeliveredRevenue_Call struct {
	*mock.Call
}

// SumDeliveredRevenue is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
func (_e *MockOrderRepository_Expecter) SumDeliveredRevenue(ctx interface{}, sellerID interface{}) *MockOrderRepository_SumDeliveredRevenue_Call {
	return &MockOrderRepository_SumDeliveredRevenue_Call{Call: _e.mock.On("SumDeliveredRevenue", ctx, sellerID)}
}

func (_c *MockOrderRepository_SumDeliveredRevenue_Call) Run(run func(ctx context.Context, sellerID uuid.UUID)) *MockOrderRepository_SumDeliveredRevenue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockOrderRepository_SumDeliveredRevenue_Call) Return(_a0 decimal.Decimal, _a1 error) *MockOrderRepository_SumDeliveredRevenue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOrderRepository_SumDeliveredRevenue_Call) RunAndReturn(run func(context.Context, uuid.UUID) (decimal.Decimal, error)) *MockOrderRepository_SumDeliveredRevenue_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOrderRepository creates a new instance of MockOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	mock := &MockOrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
