package handler

import (
	"log/slog"
	"net/http"
	"time"

	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ShipmentHandlerParams struct {
	fx.In

	ShipmentUC usecase.ShipmentUsecase
	Logger     *slog.Logger
}

type ShipmentHandler struct {
	shipmentUC usecase.ShipmentUsecase
	logger     *slog.Logger
}

func NewShipmentHandler(params ShipmentHandlerParams) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentUC: params.ShipmentUC,
		logger:     params.Logger,
	}
}

type CreateShipmentRequest struct {
	OrderID              string     `json:"order_id" validate:"required,uuid"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	TrackingNumber       string     `json:"tracking_number" validate:"max=100"`
	Carrier              string     `json:"carrier" validate:"max=100"`
	Notes                string     `json:"notes" validate:"max=1000"`
}

// UpdateShipmentStatusRequest leaves omitted optional fields untouched.
type UpdateShipmentStatusRequest struct {
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"tracking_number" validate:"omitempty,max=100"`
	Carrier        *string `json:"carrier" validate:"omitempty,max=100"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}

func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	shipment, err := h.shipmentUC.CreateShipment(c.Request().Context(), sellerID, usecase.CreateShipmentInput{
		OrderID:              uuid.MustParse(req.OrderID),
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		TrackingNumber:       req.TrackingNumber,
		Carrier:              req.Carrier,
		Notes:                req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Shipment created", newShipmentView(shipment))
}

func (h *ShipmentHandler) UpdateShipmentStatus(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shipment ID")
	}

	var req UpdateShipmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	shipment, err := h.shipmentUC.UpdateShipmentStatus(c.Request().Context(), sellerID, shipmentID, usecase.UpdateShipmentStatusInput{
		Status:         entity.ShipmentStatus(req.Status),
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
		Notes:          req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Shipment status updated", newShipmentView(shipment))
}

func (h *ShipmentHandler) GetShipment(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shipment ID")
	}

	shipment, err := h.shipmentUC.GetShipment(c.Request().Context(), userID, shipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newShipmentView(shipment))
}

func (h *ShipmentHandler) ListSellerShipments(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, pageSize, ok := pageQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_QUERY", "page and page_size must be integers")
	}

	result, err := h.shipmentUC.ListSellerShipments(c.Request().Context(), sellerID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*shipmentView, 0, len(result.Items))
	for _, shipment := range result.Items {
		views = append(views, newShipmentView(shipment))
	}

	return response.Paginated(c, views, pagination(result))
}

// GetTrackingQR streams a PNG that encodes the public tracking URL.
func (h *ShipmentHandler) GetTrackingQR(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shipment ID")
	}

	png, err := h.shipmentUC.GenerateTrackingQR(c.Request().Context(), userID, shipmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Track is unauthenticated; it exposes only the redacted tracking view.
func (h *ShipmentHandler) Track(c echo.Context) error {
	view, err := h.shipmentUC.TrackShipment(c.Request().Context(), c.Param("displayId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTrackingView(view))
}
