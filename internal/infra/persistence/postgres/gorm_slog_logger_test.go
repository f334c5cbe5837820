package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sqlFn() (string, int64) {
	return "SELECT * FROM products", 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), cfg)

	reqLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-9"`)
	assert.Contains(t, scoped.String(), "SELECT * FROM products")
}
