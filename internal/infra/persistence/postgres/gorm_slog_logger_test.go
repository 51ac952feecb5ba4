package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailuresWithRequestID(t *testing.T) {
	buf, l := newBufferedGormLogger(false)
	base := slog.New(slog.NewTextHandler(buf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), base)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("relation does not exist"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "relation does not exist")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	buf, l = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
