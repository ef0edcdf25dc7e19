package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"junk":  slog.LevelInfo,
	}

	for value, want := range cases {
		t.Setenv("LOG_LEVEL", value)
		assert.Equal(t, want, levelFromEnv(), "LOG_LEVEL=%q", value)
	}
}

func TestInitHonorsLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	Init()

	require.NotNil(t, Log)
	assert.False(t, Log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Log.Enabled(context.Background(), slog.LevelWarn))
}
