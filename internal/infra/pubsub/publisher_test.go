package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localharvest/config"
	"localharvest/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.MarketplaceEvent {
	return &service.MarketplaceEvent{
		RequestID:  "req-1",
		Type:       service.EventOrderPlaced,
		OrderID:    "2d7f3f7e-1111-4c3a-9c1e-6a0a3a7a0001",
		OrderRef:   "ORD-000001",
		BuyerID:    "buyer",
		SellerID:   "seller",
		Status:     "pending",
		Total:      "12.50",
		OccurredAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "order.placed", received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.MarketplaceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ORD-000001", decoded.OrderRef)
	assert.Equal(t, "seller", decoded.RecipientID())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishMarketplaceEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitEmptyOptionalFields(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.Equal(t, "order.placed", attributes["event_type"])
	assert.NotContains(t, attributes, "request_id")
	assert.NotContains(t, attributes, "shipment_id")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{name: "not configured", pubsub: nil, wantNoop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID"},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "broker"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			if tt.wantNoop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), sampleEvent()))
			}
		})
	}
}

func TestNewEventPublisher_LocalRegistersCloseHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      "local",
			LocalEndpoint: "http://localhost:1/push",
		}},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	lc.RequireStart()
	lc.RequireStop()
}
