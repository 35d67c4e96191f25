// Package logging wraps log/slog with subsystem-tagged helpers.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// Init replaces the process logger. format is "text" or "json".
func Init(level string, format string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logger := slog.New(handler)
	current.Store(logger)
	slog.SetDefault(logger)
	return nil
}

func Logger() *slog.Logger {
	return current.Load()
}

func logf(level slog.Level, subsystem string, err error, messageFmt string, args ...any) {
	logger := current.Load()
	if !logger.Enabled(context.Background(), level) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

func Debug(subsystem string, messageFmt string, args ...any) {
	logf(slog.LevelDebug, subsystem, nil, messageFmt, args...)
}

func Info(subsystem string, messageFmt string, args ...any) {
	logf(slog.LevelInfo, subsystem, nil, messageFmt, args...)
}

func Warn(subsystem string, messageFmt string, args ...any) {
	logf(slog.LevelWarn, subsystem, nil, messageFmt, args...)
}

func Error(subsystem string, err error, messageFmt string, args ...any) {
	logf(slog.LevelError, subsystem, err, messageFmt, args...)
}
