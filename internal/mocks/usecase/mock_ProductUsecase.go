package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"
)

// MockProductUsecase is a testify mock of ProductUsecase with mockery-style expecters.
type MockProductUsecase struct {
	mock.Mock
}

type MockProductUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductUsecase) EXPECT() *MockProductUsecase_Expecter {
	return &MockProductUsecase_Expecter{mock: &_m.Mock}
}

// CreateProduct provides a mock function with given fields: ctx, sellerID, input
func (_m *MockProductUsecase) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, sellerID, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.ProductInput) (*entity.Product, error)); ok {
		return rf(ctx, sellerID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.ProductInput) *entity.Product); ok {
		r0 = rf(ctx, sellerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, usecase.ProductInput) error); ok {
		r1 = rf(ctx, sellerID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_CreateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProduct'
type MockProductUsecase_CreateProduct_Call struct {
	*mock.Call
}

// CreateProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - input usecase.ProductInput
func (_e *MockProductUsecase_Expecter) CreateProduct(ctx interface{}, sellerID interface{}, input interface{}) *MockProductUsecase_CreateProduct_Call {
	return &MockProductUsecase_CreateProduct_Call{Call: _e.mock.On("CreateProduct", ctx, sellerID, input)}
}

func (_c *MockProductUsecase_CreateProduct_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, input usecase.ProductInput)) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(usecase.ProductInput))
	})
	return _c
}

func (_c *MockProductUsecase_CreateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_CreateProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID, usecase.ProductInput) (*entity.Product, error)) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProduct provides a mock function with given fields: ctx, sellerID, productID, input
func (_m *MockProductUsecase) UpdateProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, sellerID, productID, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecase.ProductInput) (*entity.Product, error)); ok {
		return rf(ctx, sellerID, productID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecase.ProductInput) *entity.Product); ok {
		r0 = rf(ctx, sellerID, productID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, usecase.ProductInput) error); ok {
		r1 = rf(ctx, sellerID, productID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_UpdateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProduct'
type MockProductUsecase_UpdateProduct_Call struct {
	*mock.Call
}

// UpdateProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - productID uuid.UUID
//   - input usecase.ProductInput
func (_e *MockProductUsecase_Expecter) UpdateProduct(ctx interface{}, sellerID interface{}, productID interface{}, input interface{}) *MockProductUsecase_UpdateProduct_Call {
	return &MockProductUsecase_UpdateProduct_Call{Call: _e.mock.On("UpdateProduct", ctx, sellerID, productID, input)}
}

func (_c *MockProductUsecase_UpdateProduct_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, input usecase.ProductInput)) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(usecase.ProductInput))
	})
	return _c
}

func (_c *MockProductUsecase_UpdateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_UpdateProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, usecase.ProductInput) (*entity.Product, error)) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteProduct provides a mock function with given fields: ctx, sellerID, productID
func (_m *MockProductUsecase) DeleteProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID) error {
	ret := _m.Called(ctx, sellerID, productID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProduct")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, sellerID, productID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductUsecase_DeleteProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteProduct'
type MockProductUsecase_DeleteProduct_Call struct {
	*mock.Call
}

// DeleteProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - productID uuid.UUID
func (_e *MockProductUsecase_Expecter) DeleteProduct(ctx interface{}, sellerID interface{}, productID interface{}) *MockProductUsecase_DeleteProduct_Call {
	return &MockProductUsecase_DeleteProduct_Call{Call: _e.mock.On("DeleteProduct", ctx, sellerID, productID)}
}

func (_c *MockProductUsecase_DeleteProduct_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID)) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductUsecase_DeleteProduct_Call) Return(_a0 error) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductUsecase_DeleteProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Return(run)
	return _c
}

// SetAvailability provides a mock function with given fields: ctx, sellerID, productID, available
func (_m *MockProductUsecase) SetAvailability(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, available bool) (*entity.Product, error) {
	ret := _m.Called(ctx, sellerID, productID, available)

	if len(ret) == 0 {
		panic("no return value specified for SetAvailability")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, bool) (*entity.Product, error)); ok {
		return rf(ctx, sellerID, productID, available)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, bool) *entity.Product); ok {
		r0 = rf(ctx, sellerID, productID, available)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, bool) error); ok {
		r1 = rf(ctx, sellerID, productID, available)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_SetAvailability_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetAvailability'
type MockProductUsecase_SetAvailability_Call struct {
	*mock.Call
}

// SetAvailability is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - productID uuid.UUID
//   - available bool
func (_e *MockProductUsecase_Expecter) SetAvailability(ctx interface{}, sellerID interface{}, productID interface{}, available interface{}) *MockProductUsecase_SetAvailability_Call {
	return &MockProductUsecase_SetAvailability_Call{Call: _e.mock.On("SetAvailability", ctx, sellerID, productID, available)}
}

func (_c *MockProductUsecase_SetAvailability_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, available bool)) *MockProductUsecase_SetAvailability_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(bool))
	})
	return _c
}

func (_c *MockProductUsecase_SetAvailability_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_SetAvailability_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_SetAvailability_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, bool) (*entity.Product, error)) *MockProductUsecase_SetAvailability_Call {
	_c.Call.Return(run)
	return _c
}

// GetProduct provides a mock function with given fields: ctx, productID
func (_m *MockProductUsecase) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, productID)

	if len(ret) == 0 {
		panic("no return value specified for GetProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Product, error)); ok {
		return rf(ctx, productID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Product); ok {
		r0 = rf(ctx, productID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, productID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_GetProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProduct'
type MockProductUsecase_GetProduct_Call struct {
	*mock.Call
}

// GetProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - productID uuid.UUID
func (_e *MockProductUsecase_Expecter) GetProduct(ctx interface{}, productID interface{}) *MockProductUsecase_GetProduct_Call {
	return &MockProductUsecase_GetProduct_Call{Call: _e.mock.On("GetProduct", ctx, productID)}
}

func (_c *MockProductUsecase_GetProduct_Call) Run(run func(ctx context.Context, productID uuid.UUID)) *MockProductUsecase_GetProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductUsecase_GetProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_GetProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_GetProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Product, error)) *MockProductUsecase_GetProduct_Call {
	_c.Call.Return(run)
	return _c
}

// ListProducts provides a mock function with given fields: ctx, filter
func (_m *MockProductUsecase) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.Page[*entity.Product], error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListProducts")
	}

	var r0 *usecase.Page[*entity.Product]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) (*usecase.Page[*entity.Product], error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) *usecase.Page[*entity.Product]); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.Page[*entity.Product])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.ProductFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_ListProducts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProducts'
type MockProductUsecase_ListProducts_Call struct {
	*mock.Call
}

// ListProducts is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.ProductFilter
func (_e *MockProductUsecase_Expecter) ListProducts(ctx interface{}, filter interface{}) *MockProductUsecase_ListProducts_Call {
	return &MockProductUsecase_ListProducts_Call{Call: _e.mock.On("ListProducts", ctx, filter)}
}

func (_c *MockProductUsecase_ListProducts_Call) Run(run func(ctx context.Context, filter entity.ProductFilter)) *MockProductUsecase_ListProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ProductFilter))
	})
	return _c
}

func (_c *MockProductUsecase_ListProducts_Call) Return(_a0 *usecase.Page[*entity.Product], _a1 error) *MockProductUsecase_ListProducts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_ListProducts_Call) RunAndReturn(run func(context.Context, entity.ProductFilter) (*usecase.Page[*entity.Product], error)) *MockProductUsecase_ListProducts_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProductUsecase creates a new instance of MockProductUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProductUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductUsecase {
	mock := &MockProductUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
