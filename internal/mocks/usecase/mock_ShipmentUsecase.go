package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"
)

// MockShipmentUsecase is a testify mock of ShipmentUsecase with mockery-style expecters.
type MockShipmentUsecase struct {
	mock.Mock
}

type MockShipmentUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockShipmentUsecase) EXPECT() *MockShipmentUsecase_Expecter {
	return &MockShipmentUsecase_Expecter{mock: &_m.Mock}
}

// CreateShipment provides a mock function with given fields: ctx, sellerID, input
func (_m *MockShipmentUsecase) CreateShipment(ctx context.Context, sellerID uuid.UUID, input usecase.CreateShipmentInput) (*entity.Shipment, error) {
	ret := _m.Called(ctx, sellerID, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateShipment")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.CreateShipmentInput) (*entity.Shipment, error)); ok {
		return rf(ctx, sellerID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecase.CreateShipmentInput) *entity.Shipment); ok {
		r0 = rf(ctx, sellerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, usecase.CreateShipmentInput) error); ok {
		r1 = rf(ctx, sellerID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_CreateShipment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateShipment'
type MockShipmentUsecase_CreateShipment_Call struct {
	*mock.Call
}

// CreateShipment is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - input usecase.CreateShipmentInput
func (_e *MockShipmentUsecase_Expecter) CreateShipment(ctx interface{}, sellerID interface{}, input interface{}) *MockShipmentUsecase_CreateShipment_Call {
	return &MockShipmentUsecase_CreateShipment_Call{Call: _e.mock.On("CreateShipment", ctx, sellerID, input)}
}

func (_c *MockShipmentUsecase_CreateShipment_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, input usecase.CreateShipmentInput)) *MockShipmentUsecase_CreateShipment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(usecase.CreateShipmentInput))
	})
	return _c
}

func (_c *MockShipmentUsecase_CreateShipment_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentUsecase_CreateShipment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_CreateShipment_Call) RunAndReturn(run func(context.Context, uuid.UUID, usecase.CreateShipmentInput) (*entity.Shipment, error)) *MockShipmentUsecase_CreateShipment_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateShipmentStatus provides a mock function with given fields: ctx, sellerID, shipmentID, input
func (_m *MockShipmentUsecase) UpdateShipmentStatus(ctx context.Context, sellerID uuid.UUID, shipmentID uuid.UUID, input usecase.UpdateShipmentStatusInput) (*entity.Shipment, error) {
	ret := _m.Called(ctx, sellerID, shipmentID, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateShipmentStatus")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecase.UpdateShipmentStatusInput) (*entity.Shipment, error)); ok {
		return rf(ctx, sellerID, shipmentID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecase.UpdateShipmentStatusInput) *entity.Shipment); ok {
		r0 = rf(ctx, sellerID, shipmentID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, usecase.UpdateShipmentStatusInput) error); ok {
		r1 = rf(ctx, sellerID, shipmentID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_UpdateShipmentStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateShipmentStatus'
type MockShipmentUsecase_UpdateShipmentStatus_Call struct {
	*mock.Call
}

// UpdateShipmentStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - shipmentID uuid.UUID
//   - input usecase.UpdateShipmentStatusInput
func (_e *MockShipmentUsecase_Expecter) UpdateShipmentStatus(ctx interface{}, sellerID interface{}, shipmentID interface{}, input interface{}) *MockShipmentUsecase_UpdateShipmentStatus_Call {
	return &MockShipmentUsecase_UpdateShipmentStatus_Call{Call: _e.mock.On("UpdateShipmentStatus", ctx, sellerID, shipmentID, input)}
}

func (_c *MockShipmentUsecase_UpdateShipmentStatus_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, shipmentID uuid.UUID, input usecase.UpdateShipmentStatusInput)) *MockShipmentUsecase_UpdateShipmentStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(usecase.UpdateShipmentStatusInput))
	})
	return _c
}

func (_c *MockShipmentUsecase_UpdateShipmentStatus_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentUsecase_UpdateShipmentStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_UpdateShipmentStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, usecase.UpdateShipmentStatusInput) (*entity.Shipment, error)) *MockShipmentUsecase_UpdateShipmentStatus_Call {
	_c.Call.Return(run)
	return _c
}

// GetShipment provides a mock function with given fields: ctx, userID, shipmentID
func (_m *MockShipmentUsecase) GetShipment(ctx context.Context, userID uuid.UUID, shipmentID uuid.UUID) (*entity.Shipment, error) {
	ret := _m.Called(ctx, userID, shipmentID)

	if len(ret) == 0 {
		panic("no return value specified for GetShipment")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Shipment, error)); ok {
		return rf(ctx, userID, shipmentID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Shipment); ok {
		r0 = rf(ctx, userID, shipmentID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, shipmentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_GetShipment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetShipment'
type MockShipmentUsecase_GetShipment_Call struct {
	*mock.Call
}

// GetShipment is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - shipmentID uuid.UUID
func (_e *MockShipmentUsecase_Expecter) GetShipment(ctx interface{}, userID interface{}, shipmentID interface{}) *MockShipmentUsecase_GetShipment_Call {
	return &MockShipmentUsecase_GetShipment_Call{Call: _e.mock.On("GetShipment", ctx, userID, shipmentID)}
}

func (_c *MockShipmentUsecase_GetShipment_Call) Run(run func(ctx context.Context, userID uuid.UUID, shipmentID uuid.UUID)) *MockShipmentUsecase_GetShipment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentUsecase_GetShipment_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentUsecase_GetShipment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_GetShipment_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Shipment, error)) *MockShipmentUsecase_GetShipment_Call {
	_c.Call.Return(run)
	return _c
}

// GetShipmentByOrder provides a mock function with given fields: ctx, userID, orderID
func (_m *MockShipmentUsecase) GetShipmentByOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Shipment, error) {
	ret := _m.Called(ctx, userID, orderID)

	if len(ret) == 0 {
		panic("no return value specified for GetShipmentByOrder")
	}

	var r0 *entity.Shipment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Shipment, error)); ok {
		return rf(ctx, userID, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Shipment); ok {
		r0 = rf(ctx, userID, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Shipment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_GetShipmentByOrder_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetShipmentByOrder'
type MockShipmentUsecase_GetShipmentByOrder_Call struct {
	*mock.Call
}

// GetShipmentByOrder is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - orderID uuid.UUID
func (_e *MockShipmentUsecase_Expecter) GetShipmentByOrder(ctx interface{}, userID interface{}, orderID interface{}) *MockShipmentUsecase_GetShipmentByOrder_Call {
	return &MockShipmentUsecase_GetShipmentByOrder_Call{Call: _e.mock.On("GetShipmentByOrder", ctx, userID, orderID)}
}

func (_c *MockShipmentUsecase_GetShipmentByOrder_Call) Run(run func(ctx context.Context, userID uuid.UUID, orderID uuid.UUID)) *MockShipmentUsecase_GetShipmentByOrder_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentUsecase_GetShipmentByOrder_Call) Return(_a0 *entity.Shipment, _a1 error) *MockShipmentUsecase_GetShipmentByOrder_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_GetShipmentByOrder_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Shipment, error)) *MockShipmentUsecase_GetShipmentByOrder_Call {
	_c.Call.Return(run)
	return _c
}

// ListSellerShipments provides a mock function with given fields: ctx, sellerID, page, pageSize
func (_m *MockShipmentUsecase) ListSellerShipments(ctx context.Context, sellerID uuid.UUID, page int, pageSize int) (*usecase.Page[*entity.Shipment], error) {
	ret := _m.Called(ctx, sellerID, page, pageSize)

	if len(ret) == 0 {
		panic("no return value specified for ListSellerShipments")
	}

	var r0 *usecase.Page[*entity.Shipment]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) (*usecase.Page[*entity.Shipment], error)); ok {
		return rf(ctx, sellerID, page, pageSize)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) *usecase.Page[*entity.Shipment]); ok {
		r0 = rf(ctx, sellerID, page, pageSize)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.Page[*entity.Shipment])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) error); ok {
		r1 = rf(ctx, sellerID, page, pageSize)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_ListSellerShipments_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListSellerShipments'
type MockShipmentUsecase_ListSellerShipments_Call struct {
	*mock.Call
}

// ListSellerShipments is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
//   - page int
//   - pageSize int
func (_e *MockShipmentUsecase_Expecter) ListSellerShipments(ctx interface{}, sellerID interface{}, page interface{}, pageSize interface{}) *MockShipmentUsecase_ListSellerShipments_Call {
	return &MockShipmentUsecase_ListSellerShipments_Call{Call: _e.mock.On("ListSellerShipments", ctx, sellerID, page, pageSize)}
}

func (_c *MockShipmentUsecase_ListSellerShipments_Call) Run(run func(ctx context.Context, sellerID uuid.UUID, page int, pageSize int)) *MockShipmentUsecase_ListSellerShipments_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(int), args[3].(int))
	})
	return _c
}

func (_c *MockShipmentUsecase_ListSellerShipments_Call) Return(_a0 *usecase.Page[*entity.Shipment], _a1 error) *MockShipmentUsecase_ListSellerShipments_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_ListSellerShipments_Call) RunAndReturn(run func(context.Context, uuid.UUID, int, int) (*usecase.Page[*entity.Shipment], error)) *MockShipmentUsecase_ListSellerShipments_Call {
	_c.Call.Return(run)
	return _c
}

// TrackShipment provides a mock function with given fields: ctx, displayID
func (_m *MockShipmentUsecase) TrackShipment(ctx context.Context, displayID string) (*usecase.TrackingView, error) {
	ret := _m.Called(ctx, displayID)

	if len(ret) == 0 {
		panic("no return value specified for TrackShipment")
	}

	var r0 *usecase.TrackingView
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*usecase.TrackingView, error)); ok {
		return rf(ctx, displayID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *usecase.TrackingView); ok {
		r0 = rf(ctx, displayID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.TrackingView)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, displayID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_TrackShipment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TrackShipment'
type MockShipmentUsecase_TrackShipment_Call struct {
	*mock.Call
}

// TrackShipment is a helper method to define mock.On call
//   - ctx context.Context
//   - displayID string
func (_e *MockShipmentUsecase_Expecter) TrackShipment(ctx interface{}, displayID interface{}) *MockShipmentUsecase_TrackShipment_Call {
	return &MockShipmentUsecase_TrackShipment_Call{Call: _e.mock.On("TrackShipment", ctx, displayID)}
}

func (_c *MockShipmentUsecase_TrackShipment_Call) Run(run func(ctx context.Context, displayID string)) *MockShipmentUsecase_TrackShipment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockShipmentUsecase_TrackShipment_Call) Return(_a0 *usecase.TrackingView, _a1 error) *MockShipmentUsecase_TrackShipment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_TrackShipment_Call) RunAndReturn(run func(context.Context, string) (*usecase.TrackingView, error)) *MockShipmentUsecase_TrackShipment_Call {
	_c.Call.Return(run)
	return _c
}

// GenerateTrackingQR provides a mock function with given fields: ctx, userID, shipmentID
func (_m *MockShipmentUsecase) GenerateTrackingQR(ctx context.Context, userID uuid.UUID, shipmentID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, userID, shipmentID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateTrackingQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) ([]byte, error)); ok {
		return rf(ctx, userID, shipmentID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) []byte); ok {
		r0 = rf(ctx, userID, shipmentID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, shipmentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShipmentUsecase_GenerateTrackingQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateTrackingQR'
type MockShipmentUsecase_GenerateTrackingQR_Call struct {
	*mock.Call
}

// GenerateTrackingQR is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - shipmentID uuid.UUID
func (_e *MockShipmentUsecase_Expecter) GenerateTrackingQR(ctx interface{}, userID interface{}, shipmentID interface{}) *MockShipmentUsecase_GenerateTrackingQR_Call {
	return &MockShipmentUsecase_GenerateTrackingQR_Call{Call: _e.mock.On("GenerateTrackingQR", ctx, userID, shipmentID)}
}

func (_c *MockShipmentUsecase_GenerateTrackingQR_Call) Run(run func(ctx context.Context, userID uuid.UUID, shipmentID uuid.UUID)) *MockShipmentUsecase_GenerateTrackingQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockShipmentUsecase_GenerateTrackingQR_Call) Return(_a0 []byte, _a1 error) *MockShipmentUsecase_GenerateTrackingQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockShipmentUsecase_GenerateTrackingQR_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) ([]byte, error)) *MockShipmentUsecase_GenerateTrackingQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockShipmentUsecase creates a new instance of MockShipmentUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockShipmentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShipmentUsecase {
	mock := &MockShipmentUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
