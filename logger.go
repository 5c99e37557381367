// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"log/slog"

	"github.com/gogpu/chart/internal/logging"
)

// SetLogger configures the logger for chart and all its sub-packages.
// By default, chart produces no log output. Pass nil to restore silence.
//
// SetLogger is safe for concurrent use.
//
// Log levels used by chart:
//   - [slog.LevelDebug]: model publication, abandoned transactions, transitions
//   - [slog.LevelWarn]: rejected range overrides, backend fill or stroke failures
//
// Example:
//
//	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by chart. It is never nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
