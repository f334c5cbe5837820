package impl

import (
	"context"
	"testing"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	mockRepo "localharvest/internal/mocks/repository"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
	}
}

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:     "  Wildflower Honey ",
		Price:    decimal.RequireFromString("8.999"),
		Category: entity.CategoryHoney,
		Quantity: 12,
		Unit:     entity.UnitPiece,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, sellerID, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, sellerID, product.SellerID)
	assert.Equal(t, "Wildflower Honey", product.Name)
	assert.Equal(t, "9", product.Price.String())
	assert.True(t, product.IsAvailable, "new listings default to available")
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{name: "blank name", mutate: func(in *usecase.ProductInput) { in.Name = "  " }},
		{name: "negative price", mutate: func(in *usecase.ProductInput) { in.Price = decimal.NewFromInt(-1) }},
		{name: "negative quantity", mutate: func(in *usecase.ProductInput) { in.Quantity = -3 }},
		{name: "unknown category", mutate: func(in *usecase.ProductInput) { in.Category = "toys" }},
		{name: "unknown unit", mutate: func(in *usecase.ProductInput) { in.Unit = "bushel" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			input := validProductInput()
			tt.mutate(&input)

			_, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_UpdateProduct_Ownership(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(3)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, uuid.New(), product.ID, validProductInput())
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestProductService_UpdateProduct_KeepsAvailabilityWhenOmitted(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(3)
	product.IsAvailable = false

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.SellerID, product.ID, validProductInput())
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, 12, updated.Quantity)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(3)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, product.SellerID, product.ID))
}

func TestProductService_SetAvailability(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := newTestProduct(3)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetAvailability(ctx, product.ID, false).Return(nil)

	updated, err := fx.service.SetAvailability(ctx, product.SellerID, product.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, entity.ProductFilter{Search: "kale", Category: entity.CategoryVegetables, AvailableOnly: true, Page: 1, PageSize: 20}).
		Return([]*entity.Product{newTestProduct(1)}, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Search: " kale ", Category: entity.CategoryVegetables, AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalPages())

	_, err = fx.service.ListProducts(ctx, entity.ProductFilter{Category: "toys"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
