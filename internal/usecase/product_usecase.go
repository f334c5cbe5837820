package usecase

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the editable fields of a listing.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    entity.Category
	Quantity    int
	Unit        entity.Unit
	ImageURL    string
	IsAvailable *bool // Defaults to true on create
}

// ProductUsecase covers the seller catalog and public browsing.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	SetAvailability(ctx context.Context, sellerID, productID uuid.UUID, available bool) (*entity.Product, error)

	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*Page[*entity.Product], error)
}
