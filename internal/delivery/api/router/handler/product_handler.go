package handler

import (
	"log/slog"
	"net/http"

	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the public catalog and the seller's listing management.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Unit        string          `json:"unit" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	IsAvailable *bool           `json:"is_available"`
}

func (r *ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    entity.Category(r.Category),
		Quantity:    r.Quantity,
		Unit:        entity.Unit(r.Unit),
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// ListProducts is the public catalog: only available, in-stock listings.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, pageSize, ok := pageQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "page and page_size must be integers")
	}

	filter := entity.ProductFilter{
		Search:        c.QueryParam("search"),
		Category:      entity.Category(c.QueryParam("category")),
		AvailableOnly: true,
		Page:          page,
		PageSize:      pageSize,
	}
	if raw := c.QueryParam("seller_id"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid seller ID")
		}
		filter.SellerID = &sellerID
	}

	return h.list(c, filter)
}

// ListSellerProducts lists every listing of the seller, including sold-out and hidden ones.
func (h *ProductHandler) ListSellerProducts(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, pageSize, ok := pageQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "page and page_size must be integers")
	}

	return h.list(c, entity.ProductFilter{
		Search:   c.QueryParam("search"),
		Category: entity.Category(c.QueryParam("category")),
		SellerID: &sellerID,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProductHandler) list(c echo.Context, filter entity.ProductFilter) error {
	result, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newProductViews(result.Items), pagination(result))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Product created", newProductView(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), sellerID, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Product updated", newProductView(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), sellerID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Product deleted", nil)
}

func (h *ProductHandler) SetAvailability(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUC.SetAvailability(c.Request().Context(), sellerID, productID, *req.IsAvailable)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Availability updated", newProductView(product))
}
