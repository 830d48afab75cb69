package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger adapts the standard library's slog to the Logger interface.
// It carries the client's transport and chat diagnostics; the CLI routes
// them to stderr so they never interleave with the interactive prompt.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an already-configured *slog.Logger.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewText builds a text-handler logger writing to w at the default level.
func NewText(w io.Writer) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(w, nil)))
}

// Discard returns a logger that drops everything. Meant for tests.
func Discard() *SlogLogger {
	return NewText(io.Discard)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger that always carries the given key-value pairs.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
