package handler

import (
	"net/http"

	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

func (h *DashboardHandler) GetSellerDashboard(c echo.Context) error {
	sellerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashboard, err := h.dashboardUC.GetSellerDashboard(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDashboardView(dashboard))
}
