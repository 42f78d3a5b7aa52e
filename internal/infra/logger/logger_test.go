package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level=%q", in)
	}
}

func TestNew_ProdWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(Options{Service: "storefront", Env: "prod", Level: "info", Out: &buf})

	log.Debug("hidden")
	log.Info("hello", slog.Int64("cart_id", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "storefront", line["service"])
	assert.Equal(t, "prod", line["env"])
	assert.EqualValues(t, 3, line["cart_id"])
}

func TestNew_DevWritesText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	New(Options{Service: "storefront", Env: "dev", Level: "debug", Out: &buf})

	slog.Debug("via default")
	assert.Contains(t, buf.String(), "msg=\"via default\"")
	assert.Contains(t, buf.String(), "service=storefront")
}
