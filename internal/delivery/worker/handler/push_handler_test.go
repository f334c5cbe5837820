package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/service"
	usecasemocks "localharvest/internal/mocks/usecase"
	"localharvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *usecasemocks.MockNotificationUsecase) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	notificationUC := usecasemocks.NewMockNotificationUsecase(t)
	dispatcher := NewEventDispatcher(EventDispatcherParams{NotificationUC: notificationUC, Logger: logger})

	return NewPushHandler(PushHandlerParams{Config: cfg, Dispatcher: dispatcher, Logger: logger}), notificationUC
}

func localConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: config.PubSubProviderLocal}}
	cfg.Env.Env = config.EnvLocal

	return cfg
}

func pushBody(t *testing.T, data string, attributes map[string]string) *bytes.Buffer {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(msg))

	return &buf
}

func encodedEvent(t *testing.T, event *service.MarketplaceEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func servePush(h *PushHandler, body *bytes.Buffer, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesEvent(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, localConfig())
	event := &service.MarketplaceEvent{Type: service.EventOrderPlaced, OrderRef: "ORD-000001", SellerID: "s-1"}

	notificationUC.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(e *service.MarketplaceEvent) bool {
		return e.Type == service.EventOrderPlaced && e.OrderRef == "ORD-000001"
	})).RunAndReturn(func(ctx context.Context, _ *service.MarketplaceEvent) error {
		assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))

		return nil
	})

	rec := servePush(h, pushBody(t, encodedEvent(t, event), map[string]string{"request_id": "req-7"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailureAsksForRedelivery(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, localConfig())
	event := &service.MarketplaceEvent{Type: service.EventShipmentCreated, BuyerID: "b-1"}

	notificationUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).
		Return(usecase.NewRetryableError(errors.New("db down")))

	rec := servePush(h, pushBody(t, encodedEvent(t, event), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcknowledged(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, localConfig())
	event := &service.MarketplaceEvent{Type: "unknown"}

	notificationUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(errors.New("unsupported event type"))

	rec := servePush(h, pushBody(t, encodedEvent(t, event), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedPayloadIsAcknowledged(t *testing.T) {
	h, _ := newTestPushHandler(t, localConfig())

	rec := servePush(h, pushBody(t, "%%not-base64%%", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("{broken")), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesTokenForGoogle(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     config.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = "production"
	h, notificationUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var seenAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		seenAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, "", nil), echo.HeaderAuthorization, "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	notificationUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(nil)
	event := &service.MarketplaceEvent{Type: service.EventOrderStatusChanged, BuyerID: "b-1"}
	rec = servePush(h, pushBody(t, encodedEvent(t, event), nil), echo.HeaderAuthorization, "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://notifier.example.com/push", seenAudience)
}

func TestPushHandler_SkipsVerificationLocally(t *testing.T) {
	cfg := localConfig()
	cfg.PubSub.Provider = config.PubSubProviderGoogle
	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
