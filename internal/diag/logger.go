// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag builds the diagnostic logger. Verbosity only changes what is
// logged, never what is rendered.
package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// LevelFor maps a -v count to a log level: 0 warn, 1 info, 2+ debug.
func LevelFor(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// NewLogger returns a logger writing to w at the level for verbosity.
func NewLogger(w io.Writer, verbosity int) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "runlog",
		ReportTimestamp: verbosity >= 2,
	})
	logger.SetLevel(LevelFor(verbosity))
	return logger
}
