package config_test

import (
	"log/slog"
	"testing"

	"github.com/katalvlaran/stochastic/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		config.EnvLogLevel, config.EnvLogFile, config.EnvTolerance,
		config.EnvMaxIter, config.EnvUnseenEmission,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 1e-8, cfg.Tolerance)
	assert.Equal(t, 1000, cfg.MaxIter)
	assert.Equal(t, 1e-6, cfg.UnseenEmission)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFile, "/tmp/stochastic.log")
	t.Setenv(config.EnvTolerance, "1e-10")
	t.Setenv(config.EnvMaxIter, "50")
	t.Setenv(config.EnvUnseenEmission, "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/stochastic.log", cfg.LogFile)
	assert.Equal(t, 1e-10, cfg.Tolerance)
	assert.Equal(t, 50, cfg.MaxIter)
	assert.Zero(t, cfg.UnseenEmission)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct{ key, val string }{
		{config.EnvTolerance, "abc"},
		{config.EnvTolerance, "0"},
		{config.EnvTolerance, "-1"},
		{config.EnvMaxIter, "0"},
		{config.EnvMaxIter, "ten"},
		{config.EnvUnseenEmission, "NaN"},
		{config.EnvUnseenEmission, "-0.5"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, config.ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, config.ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, config.ParseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, config.ParseLogLevel("verbose"))
}
