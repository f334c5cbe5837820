package impl

import (
	"context"
	"log/slog"
	"strings"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	rules       *config.MarketplaceConfig
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		rules:       params.Config.Marketplace,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
	}
	applyProductInput(product, input)
	if input.IsAvailable == nil {
		product.IsAvailable = true
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("seller_id", sellerID.String()),
	)

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}
	applyProductInput(product, input)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", productID.String()))

	return nil
}

func (srv *productService) SetAvailability(ctx context.Context, sellerID, productID uuid.UUID, available bool) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.SetAvailability(ctx, productID, available); err != nil {
		return nil, errors.Wrap(err, "failed to update availability")
	}
	product.IsAvailable = available

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	return findProduct(ctx, srv.productRepo, productID)
}

func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.Page[*entity.Product], error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + string(filter.Category))
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, srv.rules)

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.Page[*entity.Product]{
		Items:    products,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (srv *productService) ownedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsOwnedBy(sellerID) {
		return nil, domainerrors.ErrProductOwnershipViolation
	}

	return product, nil
}

func validateProductInput(input usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case input.Quantity < 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	case !input.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + string(input.Category))
	case !input.Unit.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown unit: " + string(input.Unit))
	}

	return nil
}

func applyProductInput(product *entity.Product, input usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price.Round(2)
	product.Category = input.Category
	product.Quantity = input.Quantity
	product.Unit = input.Unit
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
}
