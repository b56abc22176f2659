// SPDX-License-Identifier: MIT

// Package config reads the CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stochastic/hmm"
	"github.com/katalvlaran/stochastic/markov"
)

// Environment variable names.
const (
	EnvLogLevel       = "STOCHASTIC_LOG_LEVEL"
	EnvLogFile        = "STOCHASTIC_LOG_FILE"
	EnvTolerance      = "STOCHASTIC_TOLERANCE"
	EnvMaxIter        = "STOCHASTIC_MAX_ITER"
	EnvUnseenEmission = "STOCHASTIC_UNSEEN_EMISSION"
)

// Config holds all configuration values.
type Config struct {
	// Logging
	LogLevel slog.Level
	LogFile  string // empty: stderr only

	// Numerics
	Tolerance      float64
	MaxIter        int
	UnseenEmission float64
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		LogLevel:       slog.LevelWarn,
		Tolerance:      markov.DefaultTolerance,
		MaxIter:        markov.DefaultMaxIter,
		UnseenEmission: hmm.DefaultUnseenEmission,
	}
}

// Load reads configuration from environment variables, falling back to
// Default for unset ones. A set but malformed numeric variable is an error.
func Load() (Config, error) {
	def := Default()
	cfg := Config{
		LogLevel: ParseLogLevel(getEnv(EnvLogLevel, def.LogLevel.String())),
		LogFile:  getEnv(EnvLogFile, ""),
	}

	var err error
	if cfg.Tolerance, err = positiveFloat(EnvTolerance, def.Tolerance); err != nil {
		return Config{}, err
	}
	if cfg.UnseenEmission, err = nonNegativeFloat(EnvUnseenEmission, def.UnseenEmission); err != nil {
		return Config{}, err
	}
	raw := getEnv(EnvMaxIter, strconv.Itoa(def.MaxIter))
	if cfg.MaxIter, err = strconv.Atoi(raw); err != nil || cfg.MaxIter < 1 {
		return Config{}, fmt.Errorf("config: %s=%q: want a positive integer", EnvMaxIter, raw)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func positiveFloat(key string, def float64) (float64, error) {
	v, err := nonNegativeFloat(key, def)
	if err == nil && v == 0 {
		err = fmt.Errorf("config: %s=0: want a positive number", key)
	}
	return v, err
}

func nonNegativeFloat(key string, def float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("config: %s=%q: want a non-negative finite number", key, raw)
	}
	return v, nil
}

// ParseLogLevel maps DEBUG, INFO, WARN/WARNING and ERROR (any case) to a
// slog.Level. Anything else yields slog.LevelInfo.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
