package usecase

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"localharvest/internal/domain/entity"
)

// MockDashboardUsecase is a testify mock of DashboardUsecase with mockery-style expecters.
type MockDashboardUsecase struct {
	mock.Mock
}

type MockDashboardUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDashboardUsecase) EXPECT() *MockDashboardUsecase_Expecter {
	return &MockDashboardUsecase_Expecter{mock: &_m.Mock}
}

// GetSellerDashboard provides a mock function with given fields: ctx, sellerID
func (_m *MockDashboardUsecase) GetSellerDashboard(ctx context.Context, sellerID uuid.UUID) (*entity.SellerDashboard, error) {
	ret := _m.Called(ctx, sellerID)

	if len(ret) == 0 {
		panic("no return value specified for GetSellerDashboard")
	}

	var r0 *entity.SellerDashboard
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.SellerDashboard, error)); ok {
		return rf(ctx, sellerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.SellerDashboard); ok {
		r0 = rf(ctx, sellerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SellerDashboard)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, sellerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDashboardUsecase_GetSellerDashboard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetSellerDashboard'
type MockDashboardUsecase_GetSellerDashboard_Call struct {
	*mock.Call
}

// GetSellerDashboard is a helper method to define mock.On call
//   - ctx context.Context
//   - sellerID uuid.UUID
func (_e *MockDashboardUsecase_Expecter) GetSellerDashboard(ctx interface{}, sellerID interface{}) *MockDashboardUsecase_GetSellerDashboard_Call {
	return &MockDashboardUsecase_GetSellerDashboard_Call{Call: _e.mock.On("GetSellerDashboard", ctx, sellerID)}
}

func (_c *MockDashboardUsecase_GetSellerDashboard_Call) Run(run func(ctx context.Context, sellerID uuid.UUID)) *MockDashboardUsecase_GetSellerDashboard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockDashboardUsecase_GetSellerDashboard_Call) Return(_a0 *entity.SellerDashboard, _a1 error) *MockDashboardUsecase_GetSellerDashboard_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDashboardUsecase_GetSellerDashboard_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.SellerDashboard, error)) *MockDashboardUsecase_GetSellerDashboard_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDashboardUsecase creates a new instance of MockDashboardUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDashboardUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDashboardUsecase {
	mock := &MockDashboardUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
