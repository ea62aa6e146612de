package infrastructure

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	t.Run("console output", func(t *testing.T) {
		logger, err := createLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("file output creates log directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "test.log")
		logger, err := createLogger(config.LoggingConfig{Level: "debug", Format: "text", Output: "file", FilePath: path})
		require.NoError(t, err)

		logger.Info("hello")
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}

// swapGlobalLogger points the package logger at buf for the duration of a
// test and restores the previous one afterwards.
func swapGlobalLogger(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	prev := globalLogger
	globalLogger = slog.New(slog.NewJSONHandler(buf, nil))
	t.Cleanup(func() { globalLogger = prev })
}

func TestGetLogger(t *testing.T) {
	prev := globalLogger
	globalLogger = nil
	t.Cleanup(func() { globalLogger = prev })

	assert.NotNil(t, GetLogger())
}

func TestLoggerWithContext(t *testing.T) {
	t.Run("includes trace id from context", func(t *testing.T) {
		var buf bytes.Buffer
		swapGlobalLogger(t, &buf)

		ctx := WithTraceID(context.Background(), "trace-42")
		LoggerWithContext(ctx).Info("processing")

		assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
		assert.Contains(t, buf.String(), "processing")
	})

	t.Run("no trace id attribute without one in context", func(t *testing.T) {
		var buf bytes.Buffer
		swapGlobalLogger(t, &buf)

		LoggerWithContext(context.Background()).Info("plain")

		assert.NotContains(t, buf.String(), "trace_id")
	})
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent(logger, "cli").Info("ready")

	assert.Contains(t, buf.String(), `"component":"cli"`)
}

func TestTraceID(t *testing.T) {
	t.Run("generate is unique", func(t *testing.T) {
		assert.NotEqual(t, GenerateTraceID(), GenerateTraceID())
	})

	t.Run("round trip through context", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "abc-123")
		assert.Equal(t, "abc-123", GetTraceID(ctx))
	})

	t.Run("missing trace id", func(t *testing.T) {
		assert.Equal(t, "", GetTraceID(context.Background()))
	})

	t.Run("ensure generates when absent", func(t *testing.T) {
		ctx := EnsureTraceID(context.Background())
		assert.NotEmpty(t, GetTraceID(ctx))
	})

	t.Run("ensure keeps existing", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "keep-me")
		ctx = EnsureTraceID(ctx)
		assert.Equal(t, "keep-me", GetTraceID(ctx))
	})
}
