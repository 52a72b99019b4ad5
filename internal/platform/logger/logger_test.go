package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/sanmei-api/internal/config"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "info", Port: 8080})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default(), "Setup installs the logger as default")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		want   slog.Level
		wantOK bool
	}{
		{name: "debug", want: slog.LevelDebug, wantOK: true},
		{name: "INFO", want: slog.LevelInfo, wantOK: true},
		{name: " Warn ", want: slog.LevelWarn, wantOK: true},
		{name: "error", want: slog.LevelError, wantOK: true},
		{name: "fatal", want: slog.LevelInfo, wantOK: false},
		{name: "", want: slog.LevelInfo, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := logger.ParseLevel(tc.name)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

// TestInvalidLogLevelParsing checks that an unknown level logs a warning and
// falls back to info.
func TestInvalidLogLevelParsing(t *testing.T) {
	t.Parallel()

	var out, warn bytes.Buffer
	l := logger.New(&out, &warn, "invalid_level")

	assert.Contains(t, warn.String(), "invalid log level configured")
	assert.Contains(t, warn.String(), "configured_level=invalid_level")

	l.Debug("hidden")
	l.Info("shown")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "shown", entry["msg"])
}

func TestValidLogLevelParsing(t *testing.T) {
	t.Parallel()

	var out, warn bytes.Buffer
	l := logger.New(&out, &warn, "debug")
	l.Debug("visible", "key", "value")

	assert.Empty(t, warn.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "value", entry["key"])
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Same(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		t.Parallel()
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Same(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestCapture(t *testing.T) {
	t.Parallel()

	buf, l := logger.NewCapture()
	l.Debug("first", "n", 1)
	l.With("component", "test").Info("second")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "test", entries[1]["component"])
	assert.Equal(t, []string{"first", "second"}, buf.Messages())
}
