// Package logging configures the slog logger used by every command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options controls where logs go.
type Options struct {
	Level string
	// File appends logs to this path when set.
	File string
	// Console is the terminal sink; nil disables console output.
	Console io.Writer
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a text logger. The returned close function releases the log
// file and is safe to call when no file was opened.
func New(options Options) (*slog.Logger, func() error, error) {
	var writers []io.Writer
	if options.Console != nil {
		writers = append(writers, options.Console)
	}

	closeFn := func() error { return nil }
	if options.File != "" {
		if err := os.MkdirAll(filepath.Dir(options.File), 0o750); err != nil {
			return nil, closeFn, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(options.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // log file readable by owner and group
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: ParseLevel(options.Level)})
	return slog.New(handler), closeFn, nil
}
