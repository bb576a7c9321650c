// Package ulog contains medic-rust-specific log helpers.
package ulog

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger writing to w. Debug records are only emitted
// when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Error returns a [slog.Attr] representing the given error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.String("error", err.Error())
}

// Command returns a [slog.Attr] with the command line being run.
func Command(name string, args []string) slog.Attr {
	return slog.String("command", strings.TrimSpace(name+" "+strings.Join(args, " ")))
}
