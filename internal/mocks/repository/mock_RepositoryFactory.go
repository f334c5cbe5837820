package repository

import (
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/repository"
)

// MockRepositoryFactory is a testify mock of RepositoryFactory with mockery-style expecters.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewUserRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewUserRepository")
	}

	var r0 repository.UserRepository
	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.UserRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewUserRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewUserRepository'
type MockRepositoryFactory_NewUserRepository_Call struct {
	*mock.Call
}

// NewUserRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *MockRepositoryFactory_NewUserRepository_Call {
	return &MockRepositoryFactory_NewUserRepository_Call{Call: _e.mock.On("NewUserRepository")}
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) Run(run func()) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewUserRepository_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_NewUserRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewProductRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewProductRepository")
	}

	var r0 repository.ProductRepository
	if rf, ok := ret.Get(0).(func() repository.ProductRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ProductRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewProductRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewProductRepository'
type MockRepositoryFactory_NewProductRepository_Call struct {
	*mock.Call
}

// NewProductRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewProductRepository() *MockRepositoryFactory_NewProductRepository_Call {
	return &MockRepositoryFactory_NewProductRepository_Call{Call: _e.mock.On("NewProductRepository")}
}

func (_c *MockRepositoryFactory_NewProductRepository_Call) Run(run func()) *MockRepositoryFactory_NewProductRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewProductRepository_Call) Return(_a0 repository.ProductRepository) *MockRepositoryFactory_NewProductRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewProductRepository_Call) RunAndReturn(run func() repository.ProductRepository) *MockRepositoryFactory_NewProductRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewCartRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewCartRepository() repository.CartRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewCartRepository")
	}

	var r0 repository.CartRepository
	if rf, ok := ret.Get(0).(func() repository.CartRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.CartRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewCartRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewCartRepository'
type MockRepositoryFactory_NewCartRepository_Call struct {
	*mock.Call
}

// NewCartRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewCartRepository() *MockRepositoryFactory_NewCartRepository_Call {
	return &MockRepositoryFactory_NewCartRepository_Call{Call: _e.mock.On("NewCartRepository")}
}

func (_c *MockRepositoryFactory_NewCartRepository_Call) Run(run func()) *MockRepositoryFactory_NewCartRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewCartRepository_Call) Return(_a0 repository.CartRepository) *MockRepositoryFactory_NewCartRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewCartRepository_Call) RunAndReturn(run func() repository.CartRepository) *MockRepositoryFactory_NewCartRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewOrderRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewOrderRepository")
	}

	var r0 repository.OrderRepository
	if rf, ok := ret.Get(0).(func() repository.OrderRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.OrderRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewOrderRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewOrderRepository'
type MockRepositoryFactory_NewOrderRepository_Call struct {
	*mock.Call
}

// NewOrderRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewOrderRepository() *MockRepositoryFactory_NewOrderRepository_Call {
	return &MockRepositoryFactory_NewOrderRepository_Call{Call: _e.mock.On("NewOrderRepository")}
}

func (_c *MockRepositoryFactory_NewOrderRepository_Call) Run(run func()) *MockRepositoryFactory_NewOrderRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewOrderRepository_Call) Return(_a0 repository.OrderRepository) *MockRepositoryFactory_NewOrderRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewOrderRepository_Call) RunAndReturn(run func() repository.OrderRepository) *MockRepositoryFactory_NewOrderRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewShipmentRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewShipmentRepository() repository.ShipmentRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewShipmentRepository")
	}

	var r0 repository.ShipmentRepository
	if rf, ok := ret.Get(0).(func() repository.ShipmentRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ShipmentRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewShipmentRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewShipmentRepository'
type MockRepositoryFactory_NewShipmentRepository_Call struct {
	*mock.Call
}

// NewShipmentRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewShipmentRepository() *MockRepositoryFactory_NewShipmentRepository_Call {
	return &MockRepositoryFactory_NewShipmentRepository_Call{Call: _e.mock.On("NewShipmentRepository")}
}

func (_c *MockRepositoryFactory_NewShipmentRepository_Call) Run(run func()) *MockRepositoryFactory_NewShipmentRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewShipmentRepository_Call) Return(_a0 repository.ShipmentRepository) *MockRepositoryFactory_NewShipmentRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewShipmentRepository_Call) RunAndReturn(run func() repository.ShipmentRepository) *MockRepositoryFactory_NewShipmentRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewCounterRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewCounterRepository() repository.CounterRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewCounterRepository")
	}

	var r0 repository.CounterRepository
	if rf, ok := ret.Get(0).(func() repository.CounterRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.CounterRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewCounterRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewCounterRepository'
type MockRepositoryFactory_NewCounterRepository_Call struct {
	*mock.Call
}

// NewCounterRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewCounterRepository() *MockRepositoryFactory_NewCounterRepository_Call {
	return &MockRepositoryFactory_NewCounterRepository_Call{Call: _e.mock.On("NewCounterRepository")}
}

func (_c *MockRepositoryFactory_NewCounterRepository_Call) Run(run func()) *MockRepositoryFactory_NewCounterRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewCounterRepository_Call) Return(_a0 repository.CounterRepository) *MockRepositoryFactory_NewCounterRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewCounterRepository_Call) RunAndReturn(run func() repository.CounterRepository) *MockRepositoryFactory_NewCounterRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
