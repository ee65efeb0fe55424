package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/babybear/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything"))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		NewConsoleHandler(&debugBuf, config.LoggingConfig{Level: "debug", Format: "text"}),
		NewConsoleHandler(&infoBuf, config.LoggingConfig{Level: "info", Format: "json"}),
	}}
	logger := slog.New(m).With("run_id", "r1")

	assert.True(t, m.Enabled(context.Background(), slog.LevelDebug))

	logger.Debug("table_op", "event", "filter")
	logger.Info("table loaded", "rows", 12)

	assert.Contains(t, debugBuf.String(), "table_op")
	assert.Contains(t, debugBuf.String(), "run_id=r1")
	assert.NotContains(t, infoBuf.String(), "table_op")
	assert.Contains(t, infoBuf.String(), `"rows":12`)
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	logger, closeFn := SetupLogger(config.LoggingConfig{Level: "info", Format: "text"})
	defer closeFn()
	assert.NotNil(t, logger)
}
