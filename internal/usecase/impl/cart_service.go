package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	rules       *config.MarketplaceConfig
	logger      *slog.Logger
	now         func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		rules:       params.Config.Marketplace,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByBuyer(ctx, buyerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart = entity.NewCart(buyerID)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.log(ctx).Debug("Created cart", slog.String("buyer_id", buyerID.String()))

	return cart, nil
}

func (srv *cartService) AddItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if err := checkLineQuantity(quantity); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, buyerID, func(repos repository.RepositoryFactory, cart *entity.Cart) error {
		product, err := findProduct(ctx, repos.NewProductRepository(), productID)
		if err != nil {
			return err
		}
		if !product.IsAvailable {
			return domainerrors.ErrProductUnavailable.WithDetails(product.Name)
		}

		item, exists := cart.FindItem(productID)
		held := 0
		if exists {
			held = item.Quantity
		}
		if quantity > product.Quantity-held {
			return stockError(product, held+quantity)
		}
		wanted := held + quantity

		if exists {
			item.Quantity = wanted
			item.RefreshFrom(product)

			return nil
		}

		line := entity.CartItem{ProductID: product.ID, Quantity: wanted}
		line.RefreshFrom(product)
		cart.Items = append(cart.Items, line)

		return nil
	})
}

func (srv *cartService) UpdateItem(ctx context.Context, buyerID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if err := checkLineQuantity(quantity); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, buyerID, func(repos repository.RepositoryFactory, cart *entity.Cart) error {
		item, exists := cart.FindItem(productID)
		if !exists {
			return domainerrors.ErrCartItemNotFound
		}

		product, err := findProduct(ctx, repos.NewProductRepository(), productID)
		if err != nil {
			return err
		}
		if quantity > product.Quantity {
			return stockError(product, quantity)
		}

		item.Quantity = quantity
		item.RefreshFrom(product)

		return nil
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, buyerID, productID uuid.UUID) (*entity.Cart, error) {
	return srv.mutate(ctx, buyerID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.RemoveItem(productID)

		return nil
	})
}

func (srv *cartService) Clear(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	return srv.mutate(ctx, buyerID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Clear()

		return nil
	})
}

func (srv *cartService) ApplyPromo(ctx context.Context, buyerID uuid.UUID, code string) (*entity.Cart, error) {
	percent, ok := srv.rules.PromoDiscount(code)
	if !ok {
		return nil, domainerrors.ErrInvalidPromoCode.WithDetails(code)
	}

	return srv.mutate(ctx, buyerID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.PromoCode = strings.ToUpper(strings.TrimSpace(code))
		cart.DiscountPercent = percent

		return nil
	})
}

// mutate loads (or starts) the buyer's cart, applies change and saves the whole
// cart in one transaction. A failing change leaves the stored cart untouched.
func (srv *cartService) mutate(ctx context.Context, buyerID uuid.UUID, change func(repository.RepositoryFactory, *entity.Cart) error) (*entity.Cart, error) {
	var saved *entity.Cart

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		cartRepo := repos.NewCartRepository()

		cart, err := cartRepo.FindByBuyer(ctx, buyerID)
		if errors.Is(err, repository.ErrCartNotFound) {
			cart, err = entity.NewCart(buyerID), nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		if err := change(repos, cart); err != nil {
			return err
		}

		cart.UpdatedAt = srv.now()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		saved = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Cart update rejected", slog.String("buyer_id", buyerID.String()), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	return saved, nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func checkLineQuantity(quantity int) error {
	if quantity < 1 || quantity > entity.MaxLineQuantity {
		return domainerrors.ErrInvalidQuantity.WithDetails(
			fmt.Sprintf("quantity must be between 1 and %d", entity.MaxLineQuantity),
		)
	}

	return nil
}

func stockError(product *entity.Product, requested int) error {
	return domainerrors.ErrInsufficientStock.WithDetails(
		fmt.Sprintf("%s: requested %d, available %d", product.Name, requested, product.Quantity),
	)
}
