// SPDX-License-Identifier: MIT

// Package logging builds the CLI's slog logger.
//
// Records go to stderr as text. When a log file is configured they are also
// written there as JSON through a slog-multi fanout. The "error" key is
// renamed to "err" in both outputs.
package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
}

// New creates the application logger and a cleanup function closing the log
// file. An empty logFile yields a stderr-only logger.
func New(level slog.Level, logFile string) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, handlerOptions(level))
	if logFile == "" {
		return slog.New(stderrHandler), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(stderrHandler)
		logger.Warn("failed to open log file, using stderr only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, handlerOptions(level))
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler)), file.Close
}

// NewWithWriters creates the fanout logger on arbitrary writers (for testing).
func NewWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(stderr, handlerOptions(level)),
		slog.NewJSONHandler(file, handlerOptions(level)),
	))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
