// Package logging provides the structured logger used by the frame loop.
// The terminal owns stdout, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Logger is a JSON slog logger with helpers for frame loop events.
type Logger struct {
	*slog.Logger
	slow *rate.Sometimes
}

// New creates a logger writing JSON lines to w.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler).With(slog.String("system", "panekit")),
		slow:   &rate.Sometimes{First: 1, Interval: 5 * time.Second},
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

// Open creates a logger appending to path, creating parent directories.
// An empty path yields a discarding logger. Close the returned closer on
// shutdown.
func Open(path string, level slog.Level) (*Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), slow: l.slow}
}

// WithPage returns a logger tagged with a page.
func (l *Logger) WithPage(id, title string) *Logger {
	return l.with(slog.String("page_id", id), slog.String("page", title))
}

// WithComponent returns a logger tagged with a component id.
func (l *Logger) WithComponent(id string) *Logger {
	return l.with(slog.String("component_id", id))
}

// PageChanged logs a page switch.
func (l *Logger) PageChanged(from, to string) {
	l.Info("page changed",
		slog.String("from", from),
		slog.String("to", to),
	)
}

// FocusMoved logs a focus change within a page.
func (l *Logger) FocusMoved(focused string, window bool) {
	l.Debug("focus moved",
		slog.String("focused", focused),
		slog.Bool("window", window),
	)
}

// AlertScheduled logs a new alert.
func (l *Logger) AlertScheduled(id, title string, d time.Duration) {
	l.Info("alert scheduled",
		slog.String("alert_id", id),
		slog.String("title", title),
		slog.Duration("duration", d),
	)
}

// EventIgnored logs an input event no handler consumed.
func (l *Logger) EventIgnored(kind, reason string) {
	l.Debug("event ignored",
		slog.String("kind", kind),
		slog.String("reason", reason),
	)
}

// FrameSlow warns that a frame overran its budget. At most one warning is
// written per interval.
func (l *Logger) FrameSlow(took, budget time.Duration) {
	l.slow.Do(func() {
		l.Warn("slow frame",
			slog.Duration("took", took),
			slog.Duration("budget", budget),
		)
	})
}
