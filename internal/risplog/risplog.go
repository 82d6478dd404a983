// Package risplog provides the structured diagnostic logger used by the
// risp CLI's --debug flag. Grounded on the pack's only structured-logging
// idiom (kralicky-protocompile and opal-lang-opal both reach for log/slog
// rather than a third-party logging library); no pack repo imports one, so
// stdlib slog is used here directly rather than invented dependency.
package risplog

import (
	"io"
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Init reconfigures the package logger's output and level. debug=true lowers
// the level to slog.LevelDebug so Debug calls are actually emitted.
func Init(out io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Debug logs a diagnostic message with key/value pairs, visible only once
// Init has been called with debug=true.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Error logs an operational failure; always visible regardless of --debug.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}
