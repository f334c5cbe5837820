package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localharvest/config"
	apimiddleware "localharvest/internal/delivery/api/middleware"
	"localharvest/internal/delivery/api/router"
	"localharvest/internal/delivery/api/router/handler"
	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/service"
	servicemocks "localharvest/internal/mocks/service"
	usecasemocks "localharvest/internal/mocks/usecase"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	buyerToken  = "buyer-token"
	sellerToken = "seller-token"
)

type apiFixture struct {
	e         *echo.Echo
	buyerID   uuid.UUID
	sellerID  uuid.UUID
	users     *usecasemocks.MockUserUsecase
	products  *usecasemocks.MockProductUsecase
	cart      *usecasemocks.MockCartUsecase
	orders    *usecasemocks.MockOrderUsecase
	shipments *usecasemocks.MockShipmentUsecase
	dashboard *usecasemocks.MockDashboardUsecase
	devices   *usecasemocks.MockDeviceUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "harvest_session"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.DiscardHandler)

	fx := &apiFixture{
		buyerID:   uuid.New(),
		sellerID:  uuid.New(),
		users:     usecasemocks.NewMockUserUsecase(t),
		products:  usecasemocks.NewMockProductUsecase(t),
		cart:      usecasemocks.NewMockCartUsecase(t),
		orders:    usecasemocks.NewMockOrderUsecase(t),
		shipments: usecasemocks.NewMockShipmentUsecase(t),
		dashboard: usecasemocks.NewMockDashboardUsecase(t),
		devices:   usecasemocks.NewMockDeviceUsecase(t),
	}

	tokens := servicemocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(buyerToken).
		Return(&service.Claims{UserID: fx.buyerID, Role: entity.RoleBuyer.String()}, nil).Maybe()
	tokens.EXPECT().ValidateToken(sellerToken).
		Return(&service.Claims{UserID: fx.sellerID, Role: entity.RoleSeller.String()}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	fx.e = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: fx.users, Config: cfg, Logger: logger}),
		ProductHandler:   handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: fx.products, Logger: logger}),
		CartHandler:      handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cart, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orders, ShipmentUC: fx.shipments, Logger: logger}),
		ShipmentHandler:  handler.NewShipmentHandler(handler.ShipmentHandlerParams{ShipmentUC: fx.shipments, Logger: logger}),
		DashboardHandler: handler.NewDashboardHandler(fx.dashboard),
		DeviceHandler:    handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.devices, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			Config:       cfg,
		}),
	}).RegisterRoutes(fx.e)

	return fx
}

func (fx *apiFixture) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec).Meta.RequestID)
}

func TestAuth_RequiresToken(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_REQUIRED", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/api/v1/cart", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestAuth_RoleGate(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/cart", sellerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/seller/dashboard", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_SessionCookie(t *testing.T) {
	fx := newAPIFixture(t)
	fx.users.EXPECT().GetProfile(mock.Anything, fx.buyerID).
		Return(&entity.User{ID: fx.buyerID, Email: "ana@example.com", Role: entity.RoleBuyer}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(&http.Cookie{Name: "harvest_session", Value: buyerToken})
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), "ana@example.com")
}

func TestLogin_SetsHTTPOnlyCookie(t *testing.T) {
	fx := newAPIFixture(t)
	expires := time.Now().Add(time.Hour)
	fx.users.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "Secret123"}).
		Return(&usecase.LoginOutput{
			AccessToken: "signed",
			ExpiresAt:   expires,
			User:        &entity.User{ID: fx.buyerID, Role: entity.RoleBuyer},
		}, nil)

	rec := fx.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "password": "Secret123"})

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "harvest_session", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = fx.do(http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRegister_ValidatesBody(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "not-an-email", "role": "admin"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "role must be one of [buyer seller]")
}

func TestCart_AddItem(t *testing.T) {
	fx := newAPIFixture(t)
	productID := uuid.New()
	cart := entity.NewCart(fx.buyerID)
	cart.Items = []entity.CartItem{{ProductID: productID, Name: "Kale", Price: decimal.RequireFromString("2.50"), Quantity: 2}}

	fx.cart.EXPECT().AddItem(mock.Anything, fx.buyerID, productID, 2).Return(cart, nil)

	rec := fx.do(http.MethodPost, "/api/v1/cart/add", buyerToken, map[string]any{"product_id": productID, "quantity": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Item added to cart", env.Message)
	assert.Contains(t, string(env.Data), `"subtotal":"5.00"`)
}

func TestCart_RejectsZeroQuantity(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/api/v1/cart/add", buyerToken, map[string]any{"product_id": uuid.New(), "quantity": 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_RejectsQuantityAboveLineCap(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/api/v1/cart/add", buyerToken, map[string]any{"product_id": uuid.New(), "quantity": int64(math.MaxInt64)})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestCart_DomainErrorIsRendered(t *testing.T) {
	fx := newAPIFixture(t)
	productID := uuid.New()
	fx.cart.EXPECT().UpdateItem(mock.Anything, fx.buyerID, productID, 9).
		Return(nil, errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails("only 3 kg left"), "update item"))

	rec := fx.do(http.MethodPut, "/api/v1/cart/items/"+productID.String(), buyerToken, map[string]int{"quantity": 9})

	assert.Equal(t, domainerrors.ErrInsufficientStock.HTTPCode(), rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), env.Error.Code)
	assert.Equal(t, "only 3 kg left", env.Error.Details)
}

func TestOrders_PlaceOrderAndReplay(t *testing.T) {
	fx := newAPIFixture(t)
	productID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		DisplayID:   "ORD-000001",
		BuyerID:     fx.buyerID,
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("7.50"),
	}
	body := map[string]any{
		"items":            []map[string]any{{"product_id": productID, "quantity": 3}},
		"payment_method":   "card",
		"shipping_address": map[string]string{"full_name": "Ana", "street": "1 Farm Rd", "city": "Ithaca", "postal_code": "14850"},
	}

	matchInput := mock.MatchedBy(func(in usecase.PlaceOrderInput) bool {
		return in.IdempotencyKey == "key-1" && len(in.Items) == 1 && in.Items[0].ProductID == productID &&
			in.ShippingAddress.City == "Ithaca"
	})
	fx.orders.EXPECT().PlaceOrder(mock.Anything, fx.buyerID, matchInput).
		Return(&usecase.PlaceOrderOutput{Order: order}, nil).Once()
	fx.orders.EXPECT().PlaceOrder(mock.Anything, fx.buyerID, matchInput).
		Return(&usecase.PlaceOrderOutput{Order: order, Replayed: true}, nil).Once()

	rec := fx.do(http.MethodPost, "/api/v1/orders", buyerToken, body, "Idempotency-Key", "key-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"total_amount":"7.50"`)

	rec = fx.do(http.MethodPost, "/api/v1/orders", buyerToken, body, "Idempotency-Key", "key-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrders_PlaceOrderRejectsOversizedInput(t *testing.T) {
	address := map[string]string{"full_name": "Ana", "street": "1 Farm Rd", "city": "Ithaca", "postal_code": "14850"}

	t.Run("idempotency key too long", func(t *testing.T) {
		fx := newAPIFixture(t)
		body := map[string]any{
			"items":            []map[string]any{{"product_id": uuid.New(), "quantity": 1}},
			"payment_method":   "card",
			"shipping_address": address,
		}

		rec := fx.do(http.MethodPost, "/api/v1/orders", buyerToken, body,
			"Idempotency-Key", strings.Repeat("k", entity.MaxIdempotencyKeyLength+1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
		fx.orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("line quantity above cap", func(t *testing.T) {
		fx := newAPIFixture(t)
		body := map[string]any{
			"items":            []map[string]any{{"product_id": uuid.New(), "quantity": entity.MaxLineQuantity + 1}},
			"payment_method":   "card",
			"shipping_address": address,
		}

		rec := fx.do(http.MethodPost, "/api/v1/orders", buyerToken, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fx.orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrders_UpdateStatusIsSellerOnly(t *testing.T) {
	fx := newAPIFixture(t)
	orderID := uuid.New()

	rec := fx.do(http.MethodPatch, "/api/v1/orders/"+orderID.String()+"/status", buyerToken, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	fx.orders.EXPECT().UpdateOrderStatus(mock.Anything, fx.sellerID, orderID, entity.OrderStatusConfirmed).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusConfirmed}, nil)

	rec = fx.do(http.MethodPatch, "/api/v1/orders/"+orderID.String()+"/status", sellerToken, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrders_ListWithPagination(t *testing.T) {
	fx := newAPIFixture(t)
	fx.orders.EXPECT().ListBuyerOrders(mock.Anything, fx.buyerID, entity.OrderFilter{Status: entity.OrderStatusShipped, Page: 2, PageSize: 10}).
		Return(&usecase.Page[*entity.Order]{Items: []*entity.Order{{ID: uuid.New()}}, Total: 11, Page: 2, PageSize: 10}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/orders?status=shipped&page=2&page_size=10", buyerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, 2, env.Meta.Pagination.TotalPages)
}

func TestOrders_InvalidPageQuery(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/orders?page=two", buyerToken, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShipments_TrackIsPublic(t *testing.T) {
	fx := newAPIFixture(t)
	fx.shipments.EXPECT().TrackShipment(mock.Anything, "SHIP-000004").
		Return(&usecase.TrackingView{DisplayID: "SHIP-000004", OrderRef: "ORD-000009", Status: entity.ShipmentStatusInTransit, DestinationCity: "Ithaca"}, nil)

	rec := fx.do(http.MethodGet, "/track/SHIP-000004", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := string(decode(t, rec).Data)
	assert.Contains(t, data, `"destination_city":"Ithaca"`)
	assert.NotContains(t, data, "street")
}

func TestShipments_TrackingQR(t *testing.T) {
	fx := newAPIFixture(t)
	shipmentID := uuid.New()
	fx.shipments.EXPECT().GenerateTrackingQR(mock.Anything, fx.sellerID, shipmentID).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/v1/shipments/"+shipmentID.String()+"/qr", sellerToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestShipments_NotFound(t *testing.T) {
	fx := newAPIFixture(t)
	orderID := uuid.New()
	fx.shipments.EXPECT().GetShipmentByOrder(mock.Anything, fx.buyerID, orderID).
		Return(nil, domainerrors.ErrShipmentNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/shipment", buyerToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownErrorIsGeneric500(t *testing.T) {
	fx := newAPIFixture(t)
	fx.dashboard.EXPECT().GetSellerDashboard(mock.Anything, fx.sellerID).Return(nil, errors.New("connection reset"))

	rec := fx.do(http.MethodGet, "/api/v1/seller/dashboard", sellerToken, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "connection reset")
}

func TestProducts_PublicListing(t *testing.T) {
	fx := newAPIFixture(t)
	fx.products.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.AvailableOnly && f.Category == entity.CategoryHoney && f.SellerID == nil
	})).Return(&usecase.Page[*entity.Product]{Page: 1, PageSize: 20}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/products?category=honey", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDevices_Register(t *testing.T) {
	fx := newAPIFixture(t)
	fx.devices.EXPECT().RegisterDevice(mock.Anything, fx.buyerID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: fx.buyerID, IsActive: true}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/devices", buyerToken, map[string]string{"fcm_token": "tok", "device_id": "pixel", "platform": "android"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = fx.do(http.MethodPost, "/api/v1/devices", buyerToken, map[string]string{"fcm_token": "tok", "device_id": "pixel", "platform": "symbian"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
