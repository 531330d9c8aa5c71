package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.in, func(t *testing.T) {
			level, err := ParseLevel(tt.in)

			require.NoError(t, err)
			require.Equal(t, tt.expected, level)
		})
	}

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := ParseLevel("loud")

		require.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("should rename the error key in text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(slog.LevelInfo, FormatText, &buf)
		require.NoError(t, err)

		logger.Error("send failed", "error", "timeout")

		require.Contains(t, buf.String(), "err=timeout")
		require.NotContains(t, buf.String(), "error=")
	})

	t.Run("should write json records", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(slog.LevelInfo, FormatJSON, &buf)
		require.NoError(t, err)

		logger.Info("launch started", "id", "42")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		require.Equal(t, "launch started", record["msg"])
		require.Equal(t, "42", record["id"])
	})

	t.Run("should drop records below the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(slog.LevelWarn, FormatText, &buf)
		require.NoError(t, err)

		logger.Info("hidden")

		require.Empty(t, buf.String())
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		_, err := New(slog.LevelInfo, "xml", &bytes.Buffer{})

		require.Error(t, err)
	})
}
