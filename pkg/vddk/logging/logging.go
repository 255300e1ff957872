package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Logger is the logging surface of the binding. Every library object holds
// one, and the native libraries write into one through a NativeSink.
// Applications may supply their own implementation.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New binds a Logger to logger. nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogFacade{l: logger}
}

// Ensure returns l, or a Logger bound to slog.Default() when l is nil. It is
// how Config.Logger fields are resolved.
func Ensure(l Logger) Logger {
	if l == nil {
		return New(nil)
	}
	return l
}

type slogFacade struct {
	l *slog.Logger
}

func (f slogFacade) Debug(ctx context.Context, msg string, args ...any) {
	f.l.DebugContext(ctx, msg, args...)
}

func (f slogFacade) Info(ctx context.Context, msg string, args ...any) {
	f.l.InfoContext(ctx, msg, args...)
}

func (f slogFacade) Warn(ctx context.Context, msg string, args ...any) {
	f.l.WarnContext(ctx, msg, args...)
}

func (f slogFacade) Error(ctx context.Context, msg string, args ...any) {
	f.l.ErrorContext(ctx, msg, args...)
}

func (f slogFacade) With(args ...any) Logger {
	return slogFacade{l: f.l.With(args...)}
}

// NativeSink is the receiving end of the native log, warning and panic
// callbacks. vddk.Init and mntapi.Init install one built from their
// Config.Logger and put the previous sink back on Exit.
type NativeSink struct {
	logger Logger
}

// NewNative returns a sink writing to l with source=native. A nil l binds to
// slog.Default().
func NewNative(l Logger) *NativeSink {
	return &NativeSink{logger: Ensure(l).With("source", "native")}
}

// Log records an informational message.
func (s *NativeSink) Log(msg string) {
	s.logger.Info(context.Background(), trimLine(msg))
}

// Warn records a warning.
func (s *NativeSink) Warn(msg string) {
	s.logger.Warn(context.Background(), trimLine(msg))
}

// Panic records the last words of the native library, which aborts the
// process once this returns.
func (s *NativeSink) Panic(msg string) {
	s.logger.Error(context.Background(), trimLine(msg), "native_panic", true)
}

func trimLine(msg string) string {
	return strings.TrimRight(msg, "\r\n")
}

const redactedPlaceholder = "[redacted]"

// Redacted stands in for a credential attribute: the key is kept and the
// value replaced, so a record shows that a password or session key was set
// without carrying it.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the value Redacted logs.
func Placeholder() string {
	return redactedPlaceholder
}
