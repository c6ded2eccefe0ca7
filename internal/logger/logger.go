// Package logger builds the slog loggers used for trace output.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w.
//
// Verbose loggers emit debug records; otherwise only info and above are
// written. The time attribute is dropped so trace output is stable and
// readable on a terminal.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
