package handler

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"localharvest/config"
	"localharvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives Pub/Sub push deliveries. A 2xx acknowledges the message,
// anything else makes Pub/Sub redeliver it.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	dispatcher     *EventDispatcher
	logger         *slog.Logger
}

type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Dispatcher *EventDispatcher
	Logger     *slog.Logger
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub
	verifyPushAuth := pubsubCfg != nil &&
		pubsubCfg.Provider == config.PubSubProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	audience := ""
	if pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		dispatcher:     params.Dispatcher,
		logger:         params.Logger,
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Undecodable payloads are acknowledged so Pub/Sub stops redelivering them
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.dispatcher.Dispatch(ctx, data, pushMsg.Message.Attributes); err != nil {
		if usecase.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to push requests.
// Without a configured audience the endpoint URL is expected.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
