package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtx(t *testing.T) {
	t.Run("default logger without context value", func(t *testing.T) {
		assert.Same(t, defaultLogger, Ctx(context.Background()))
	})

	t.Run("logger from context", func(t *testing.T) {
		l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := With(context.Background(), l)
		assert.Same(t, l, Ctx(ctx))
	})
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := With(context.Background(), l)
	ctx = WithAttrs(ctx, slog.String("component", "controller"))

	Ctx(ctx).InfoContext(ctx, "refreshed", slog.Int("homes", 6))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "refreshed", rec["msg"])
	assert.Equal(t, "controller", rec["component"])
	assert.Equal(t, float64(6), rec["homes"])
}
