package logging

import (
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardLogger(t *testing.T) {
	logger := NewStandardLogger("debug")
	require.NotNil(t, logger)
	require.NotNil(t, logger.Logger())
}

func TestStandardLogger_ContextHelpers(t *testing.T) {
	logger := NewStandardLogger("info")

	assert.NotNil(t, logger.WithComponent("generator"))
	assert.NotNil(t, logger.WithOperation("analyze"))
	assert.NotNil(t, logger.WithRequestID("req-123"))
	assert.NotNil(t, logger.WithError(assert.AnError))
}

func TestGetSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, getSlogLevel(tt.level))
		})
	}
}

func TestParseLogrusLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogrusLevel(tt.level))
		})
	}
}
