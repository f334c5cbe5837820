package repository

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockProductRepository is a testify mock of ProductRepository with mockery-style expecters.
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Product, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockProductRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockProductRepository_FindByID_Call {
	return &MockProductRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockProductRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_FindByID_Call) Return(_a0 *entity.Product, _a1 error) *MockProductRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Product, error)) *MockProductRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByIDsForUpdate provides a mock function with given fields: ctx, ids
func (_m *MockProductRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	ret := _m.Called(ctx, ids)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDsForUpdate")
	}

	var r0 map[uuid.UUID]*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []uuid.UUID) (map[uuid.UUID]*entity.Product, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []uuid.UUID) map[uuid.UUID]*entity.Product); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[uuid.UUID]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []uuid.UUID) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindByIDsForUpdate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByIDsForUpdate'
type MockProductRepository_FindByIDsForUpdate_Call struct {
	*mock.Call
}

// FindByIDsForUpdate is a helper method to define mock.On call
//   - ctx context.Context
//   - ids []uuid.UUID
func (_e *MockProductRepository_Expecter) FindByIDsForUpdate(ctx interface{}, ids interface{}) *MockProductRepository_FindByIDsForUpdate_Call {
	return &MockProductRepository_FindByIDsForUpdate_Call{Call: _e.mock.On("FindByIDsForUpdate", ctx, ids)}
}

func (_c *MockProductRepository_FindByIDsForUpdate_Call) Run(run func(ctx context.Context, ids []uuid.UUID)) *MockProductRepository_FindByIDsForUpdate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_FindByIDsForUpdate_Call) Return(_a0 map[uuid.UUID]*entity.Product, _a1 error) *MockProductRepository_FindByIDsForUpdate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindByIDsForUpdate_Call) RunAndReturn(run func(context.Context, []uuid.UUID) (map[uuid.UUID]*entity.Product, error)) *MockProductRepository_FindByIDsForUpdate_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Product
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) ([]*entity.Product, int64, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) []*entity.Product); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.ProductFilter) int64); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, entity.ProductFilter) error); ok {
		r2 = rf(ctx, filter)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockProductRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockProductRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.ProductFilter
func (_e *MockProductRepository_Expecter) List(ctx interface{}, filter interface{}) *MockProductRepository_List_Call {
	return &MockProductRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockProductRepository_List_Call) Run(run func(ctx context.Context, filter entity.ProductFilter)) *MockProductRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ProductFilter))
	})
	return _c
}

func (_c *MockProductRepository_List_Call) Return(_a0 []*entity.Product, _a1 int64, _a2 error) *MockProductRepository_List_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockProductRepository_List_Call) RunAndReturn(run func(context.Context, entity.ProductFilter) ([]*entity.Product, int64, error)) *MockProductRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockProductRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - product *entity.Product
func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *MockProductRepository_Create_Call {
	return &MockProductRepository_Create_Call{Call: _e.mock.On("Create", ctx, product)}
}

func (_c *MockProductRepository_Create_Call) Run(run func(ctx context.Context, product *entity.Product)) *MockProductRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Product))
	})
	return _c
}

func (_c *MockProductRepository_Create_Call) Return(_a0 error) *MockProductRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Product) error) *MockProductRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockProductRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - product *entity.Product
func (_e *MockProductRepository_Expecter) Update(ctx interface{}, product interface{}) *MockProductRepository_Update_Call {
	return &MockProductRepository_Update_Call{Call: _e.mock.On("Update", ctx, product)}
}

func (_c *MockProductRepository_Update_Call) Run(run func(ctx context.Context, product *entity.Product)) *MockProductRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Product))
	})
	return _c
}

func (_c *MockProductRepository_Update_Call) Return(_a0 error) *MockProductRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Product) error) *MockProductRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockProductRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockProductRepository_Delete_Call {
	return &MockProductRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockProductRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_Delete_Call) Return(_a0 error) *MockProductRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockProductRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// SetAvailability provides a mock function with given fields: ctx, id, available
func (_m *MockProductRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	ret := _m.Called(ctx, id, available)

	if len(ret) == 0 {
		panic("no return value specified for SetAvailability")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, bool) error); ok {
		r0 = rf(ctx, id, available)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_SetAvailability_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetAvailability'
type MockProductRepository_SetAvailability_Call struct {
	*mock.Call
}

// SetAvailability is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - available bool
func (_e *MockProductRepository_Expecter) SetAvailability(ctx interface{}, id interface{}, available interface{}) *MockProductRepository_SetAvailability_Call {
	return &MockProductRepository_SetAvailability_Call{Call: _e.mock.On("SetAvailability", ctx, id, available)}
}

func (_c *MockProductRepository_SetAvailability_Call) Run(run func(ctx context.Context, id uuid.UUID, available bool)) *MockProductRepository_SetAvailability_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(bool))
	})
	return _c
}

func (_c *MockProductRepository_SetAvailability_Call) Return(_a0 error) *MockProductRepository_SetAvailability_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_SetAvailability_Call) RunAndReturn(run func(context.Context, uuid.UUID, bool) error) *MockProductRepository_SetAvailability_Call {
	_c.Call.Return(run)
	return _c
}

// DecrementStock provides a mock function with given fields: ctx, id, quantity
func (_m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int, error) {
	ret := _m.Called(ctx, id, quantity)

	if len(ret) == 0 {
		panic("no return value specified for DecrementStock")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int) (int, error)); ok {
		return rf(ctx, id, quantity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int) int); ok {
		r0 = rf(ctx, id, quantity)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int) error); ok {
		r1 = rf(ctx, id, quantity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_DecrementStock_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DecrementStock'
type MockProductRepository_DecrementStock_Call struct {
	*mock.Call
}

// DecrementStock is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - quantity int
func (_e *MockProductRepository_Expecter) DecrementStock(ctx interface{}, id interface{}, quantity interface{}) *MockProductRepository_DecrementStock_Call {
	return &MockProductRepository_DecrementStock_Call{Call: _e.mock.On("DecrementStock", ctx, id, quantity)}
}

func (_c *MockProductRepository_DecrementStock_Call) Run(run func(ctx context.Context, id uuid.UUID, quantity int)) *MockProductRepository_DecrementStock_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(int))
	})
	return _c
}

func (_c *MockProductRepository_DecrementStock_Call) Return(_a0 int, _a1 error) *MockProductRepository_DecrementStock_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_DecrementStock_Call) RunAndReturn(run func(context.Context, uuid.UUID, int) (int, error)) *MockProductRepository_DecrementStock_Call {
	_c.Call.Return(run)
	return _c
}

// CountBySeller provides a mock function with given fields: ctx, sellerID
func (_m *MockProductRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, int64, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for CountBySeller")
	}

	var r0 int64
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (int64, int64, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) int64); ok {
		r0 = rf(ctx, sellerID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) int64); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID) error); ok {
		r2 = rf(ctx, sellerID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockProductRepository_CountBySeller_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountBySeller'
type MockProductRepository_CountBySeller_Call struct {
	*mock.Call
}

// CountBySeller is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
func (_e *MockProductRepository_Expecter) CountBySeller(ctx interface{}, sellerID interface{}) *MockProductRepository_CountBySeller_Call {
	return &MockProductRepository_CountBySeller_Call{Call: _e.mock.On("CountBySeller", ctx, sellerID)}
}

func (_c *MockProductRepository_CountBySeller_Call) Run(run func(ctx context.Context, sellerID uuid.UUID)) *MockProductRepository_CountBySeller_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_CountBySeller_Call) Return(_a0 int64, _a1 int64, _a2 error) *MockProductRepository_CountBySeller_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockProductRepository_CountBySeller_Call) RunAndReturn(run func(context.Context, uuid.UUID) (int64, int64, error)) *MockProductRepository_CountBySeller_Call {
	_c.Call.Return(run)
	return _c
}

// FindLowStock provides a mock function with given fields: ctx, sellerID, threshold
func (_m *MockProductRepository) FindLowStock(ctx context.Context, sellerID uuid.UUID, threshold int) ([]*entity.Product, error) {
	ret := _m.Called(ctx, sellerID, threshold)

	if len(ret) == 0 {
		panic("no return value specified for FindLowStock")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int) ([]*entity.Product, error)); ok {
		return rf(ctx, sellerID, threshold)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int) []*entity.Product); ok {
		r0 = rf(ctx, sellerID, threshold)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int) error); ok {
		r1 = rf(ctx, sellerID, threshold)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindLowStock_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindLowStock'
type MockProductRepository_FindLowStock_Call struct {
	*mock.Call
}

// FindLowStock is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - threshold int
func (_e *MockProductRepository_Expecter) FindLowStock(ctx interface{}, sellerID interface{}, threshold interface{}) *MockProductRepository_FindLowStock_Call {
	return &MockProductRepository_FindLowStock_Call{Call: _e.mock.On("FindLowStock", ctx, sellerID, threshold)}
}

func (_c *MockProductRepository_FindLowStock_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, threshold int)) *MockProductRepository_FindLowStock_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(int))
	})
	return _c
}

func (_c *MockProductRepository_FindLowStock_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductRepository_FindLowStock_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindLowStock_Call) RunAndReturn(run func(context.Context, uuid.UUID, int) ([]*entity.Product, error)) *MockProductRepository_FindLowStock_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProductRepository creates a new instance of MockProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	mock := &MockProductRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
