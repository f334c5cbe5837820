package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String(), "successful requests are only logged in debug mode")

	failing := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized) })(failing)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"status":401`)
}
