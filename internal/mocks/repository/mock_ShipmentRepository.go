package repository

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockShipmentRepository is a testify mock of ShipmentRepository with mockery-style expecters.
type MockShipmentRepository struct {
	mock.Mock
}

type MockShipmentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockShipmentRepository) EXPECT() *MockShipmentRepository_Expecter {
	return &MockShipmentRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, shipment
func (_m *MockShipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	ret := _m.Called(ctx, shipment)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Shipment) error); ok {
		r0 = rf(ctx, shipment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockShipmentRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockShipmentRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - shipment *entity.Shipment
func (_e *MockShipmentRepository_Expecter) Create(ctx interface{}, shipment interface{}) *MockShipmentRepository_Create_Call {
	return &MockShipmentRepository_Create_Call{Call: _e.mock.On("Create", ctx, shipment)}
}

func (_c *MockShipmentRepository_Create_Call) Run(run func(ctx context.Context, shipment *entity.Shipment)) *MockShipmentRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Shipment))
	})
	return _c
}

func (_c *MockShipmentRepository_Create_Call) Return(_a0 error) *MockShipmentRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockShipmentRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Shipment) error) *MockShipmentRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, shipment
func (_m *MockShipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	ret := _m.Called(ctx, shipment)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Shipment) error); ok {
		r0 = rf(ctx, shipment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockShipmentRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockShipmentRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - shipment *entity.Shipment
func (_e *MockShipmentRepository_Expecter) Update(ctx interface{}, shipment interface{}) *MockShipmentRepository_Update_Call {
	return &MockShipmentRepository_Update_Call{Call: _e.mock.On("Update", ctx, shipment)}
}

func (_c *MockShipmentRepository_Update_Call) Run(run func(ctx context.Context, shipment *entity.Shipment)) *MockShipmentRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Shipment))
	})
	return _c
}

func (_c *MockShipmentRepository_Update_Call) Return(_a0 error) *MockShipmentRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockShipmentRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Shipment) error) *MockShipmentRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Shipment, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Shipment); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockShipmentRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockShipmentRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockShipmentRepository_FindByID_Call {
	return &MockShipmentRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockShipmentRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockShipmentRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentRepository_FindByID_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Shipment, error)) *MockShipmentRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByOrderID provides a mock function with given fields: ctx, orderID
func (_m *MockShipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOrderID")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Shipment, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Shipment); ok {
		r0 = rf(ctx, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentRepository_FindByOrderID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByOrderID'
type MockShipmentRepository_FindByOrderID_Call struct {
	*mock.Call
}

// FindByOrderID is a helper method to define mock.On call
//   - ctx context.Context
//   - orderID uuid.UUID
func (_e *MockShipmentRepository_Expecter) FindByOrderID(ctx interface{}, orderID interface{}) *MockShipmentRepository_FindByOrderID_Call {
	return &MockShipmentRepository_FindByOrderID_Call{Call: _e.mock.On("FindByOrderID", ctx, orderID)}
}

func (_c *MockShipmentRepository_FindByOrderID_Call) Run(run func(ctx context.Context, orderID uuid.UUID)) *MockShipmentRepository_FindByOrderID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentRepository_FindByOrderID_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentRepository_FindByOrderID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentRepository_FindByOrderID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Shipment, error)) *MockShipmentRepository_FindByOrderID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByDisplayID provides a mock function with given fields: ctx, displayID
func (_m *MockShipmentRepository) FindByDisplayID(ctx context.Context, displayID string) (*entity.Shipment, error) {
	ret := _m.Called(ctx, displayID)

	if len(ret) == 0 {
		panic("no return value specified for FindByDisplayID")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Shipment, error)); ok {
		return rf(ctx, displayID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Shipment); ok {
		r0 = rf(ctx, displayID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, displayID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentRepository_FindByDisplayID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByDisplayID'
type MockShipmentRepository_FindByDisplayID_Call struct {
	*mock.Call
}

// FindByDisplayID is a helper method to define mock.On call
//   - ctx context.Context
//   - displayID string
func (_e *MockShipmentRepository_Expecter) FindByDisplayID(ctx interface{}, displayID interface{}) *MockShipmentRepository_FindByDisplayID_Call {
	return &MockShipmentRepository_FindByDisplayID_Call{Call: _e.mock.On("FindByDisplayID", ctx, displayID)}
}

func (_c *MockShipmentRepository_FindByDisplayID_Call) Run(run func(ctx context.Context, displayID string)) *MockShipmentRepository_FindByDisplayID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockShipmentRepository_FindByDisplayID_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentRepository_FindByDisplayID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentRepository_FindByDisplayID_Call) RunAndReturn(run func(context.Context, string) (*entity.Shipment, error)) *MockShipmentRepository_FindByDisplayID_Call {
	_c.Call.Return(run)
	return _c
}

// ListBySeller provides a mock function with given fields: ctx, sellerID, page, pageSize
func (_m *MockShipmentRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, page int, pageSize int) ([]*entity.Shipment, int64, error) {
	ret := _m.Called(ctx, sellerID, page, pageSize)

	if len(ret) == 0 {
		panic("no return value specified for ListBySeller")
	}

	var r0 []*entity.Shipment
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) ([]*entity.Shipment, int64, error)); ok {
		return rf(ctx, sellerID, page, pageSize)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) []*entity.Shipment); ok {
		r0 = rf(ctx, sellerID, page, pageSize)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) int64); ok {
		r1 = rf(ctx, sellerID, page, pageSize)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID, int, int) error); ok {
		r2 = rf(ctx, sellerID, page, pageSize)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockShipmentRepository_ListBySeller_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBySeller'
type MockShipmentRepository_ListBySeller_Call struct {
	*mock.Call
}

// ListBySeller is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - page int
//   - pageSize int
func (_e *MockShipmentRepository_Expecter) ListBySeller(ctx interface{}, sellerID interface{}, page interface{}, pageSize interface{}) *MockShipmentRepository_ListBySeller_Call {
	return &MockShipmentRepository_ListBySeller_Call{Call: _e.mock.On("ListBySeller", ctx, sellerID, page, pageSize)}
}

func (_c *MockShipmentRepository_ListBySeller_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, page int, pageSize int)) *MockShipmentRepository_ListBySeller_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(int), args[3].(int))
	})
	return _c
}

func (_c *MockShipmentRepository_ListBySeller_Call) Return(_a0 []*entity.Shipment, _a1 int64, _a2 error) *MockShipmentRepository_ListBySeller_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockShipmentRepository_ListBySeller_Call) RunAndReturn(run func(context.Context, uuid.UUID, int, int) ([]*entity.Shipment, int64, error)) *MockShipmentRepository_ListBySeller_Call {
	_c.Call.Return(run)
	return _c
}

// CountOpenBySeller provides a mock function with given fields: ctx, sellerID
func (_m *MockShipmentRepository) CountOpenBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for CountOpenBySeller")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (int64, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) int64); ok {
		r0 = rf(ctx, sellerID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentRepository_CountOpenBySeller_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountOpenBySeller'
type MockShipmentRepository_CountOpenBySeller_Call struct {
	*mock.Call
}

// CountOpenBySeller is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
func (_e *MockShipmentRepository_Expecter) CountOpenBySeller(ctx interface{}, sellerID interface{}) *MockShipmentRepository_CountOpenBySeller_Call {
	return &MockShipmentRepository_CountOpenBySeller_Call{Call: _e.mock.On("CountOpenBySeller", ctx, sellerID)}
}

func (_c *MockShipmentRepository_CountOpenBySeller_Call) Run(run func(ctx context.Context, sellerID uuid.UUID)) *MockShipmentRepository_CountOpenBySeller_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentRepository_CountOpenBySeller_Call) Return(_a0 int64, _a1 error) *MockShipmentRepository_CountOpenBySeller_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentRepository_CountOpenBySeller_Call) RunAndReturn(run func(context.Context, uuid.UUID) (int64, error)) *MockShipmentRepository_CountOpenBySeller_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockShipmentRepository creates a new instance of MockShipmentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockShipmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShipmentRepository {
	mock := &MockShipmentRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
