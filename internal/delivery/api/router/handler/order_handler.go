package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC    usecase.OrderUsecase
	ShipmentUC usecase.ShipmentUsecase
	Logger     *slog.Logger
}

type OrderHandler struct {
	orderUC    usecase.OrderUsecase
	shipmentUC usecase.ShipmentUsecase
	logger     *slog.Logger
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:    params.OrderUC,
		shipmentUC: params.ShipmentUC,
		logger:     params.Logger,
	}
}

type OrderItemRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int              `json:"quantity" validate:"required,min=1,max=10000"`
	Total     *decimal.Decimal `json:"total"`
}

type AddressRequest struct {
	FullName   string `json:"full_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"omitempty,max=100"`
}

// PlaceOrderRequest orders the listed items, or the whole cart when items is empty.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	ShippingAddress AddressRequest     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method" validate:"required,oneof=card cash"`
	Notes           string             `json:"notes" validate:"max=1000"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PlaceOrder answers 201 for a new order and 200 when the Idempotency-Key replays an earlier one.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	buyerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}
	idempotencyKey := strings.TrimSpace(c.Request().Header.Get(idempotencyKeyHeader))
	if len(idempotencyKey) > entity.MaxIdempotencyKeyLength {
		return response.BadRequest(c, "VALIDATION_FAILED",
			fmt.Sprintf("%s must be at most %d characters", idempotencyKeyHeader, entity.MaxIdempotencyKeyLength))
	}

	input := usecase.PlaceOrderInput{
		Items:           make([]usecase.PlaceOrderItem, 0, len(req.Items)),
		ShippingAddress: entity.ShippingAddress(req.ShippingAddress),
		PaymentMethod:   entity.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
		IdempotencyKey:  idempotencyKey,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.PlaceOrderItem{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
			Total:     item.Total,
		})
	}

	output, err := h.orderUC.PlaceOrder(c.Request().Context(), buyerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if output.Replayed {
		return response.SuccessWithMessage(c, http.StatusOK, "Order already placed", newOrderView(output.Order))
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Order placed", newOrderView(output.Order))
}

func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	buyerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, ok := orderFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "page and page_size must be integers")
	}

	result, err := h.orderUC.ListBuyerOrders(c.Request().Context(), buyerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newOrderViews(result.Items), pagination(result))
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, ok := orderFilter(c)
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "page and page_size must be integers")
	}

	result, err := h.orderUC.ListSellerOrders(c.Request().Context(), sellerID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newOrderViews(result.Items), pagination(result))
}

func orderFilter(c echo.Context) (entity.OrderFilter, bool) {
	page, pageSize, ok := pageQuery(c)

	return entity.OrderFilter{
		Status:   entity.OrderStatus(c.QueryParam("status")),
		Page:     page,
		PageSize: pageSize,
	}, ok
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

func (h *OrderHandler) GetOrderShipment(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	shipment, err := h.shipmentUC.GetShipmentByOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newShipmentView(shipment))
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), sellerID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Order status updated", newOrderView(order))
}
