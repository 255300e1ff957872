// Package logging provides the logging facade used by the disk library
// binding and the adapters that route native library output into it.
//
// # Logger Interface
//
// Logger wraps the context-aware subset of log/slog the binding needs:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New binds a Logger to a *slog.Logger; nil binds to slog.Default().
//
// # Native Output
//
// The disk and mount libraries report progress and problems through three
// printf-style callbacks. The binding formats each message and hands the
// text to a sink. NewNative returns a sink that forwards into a Logger:
//
//	logger := logging.New(slog.New(handler))
//	sink := logging.NewNative(logger)
//
// Informational messages land at info, warnings at warn and panics at
// error with native_panic=true. Trailing newlines are trimmed.
//
// # Handlers
//
// NewSlog builds the handler used by the command line tool. ModeText emits
// one terse line per record and ModeJSON uses slog's JSON handler. ParseMode
// and ParseLevel map flag values onto those settings.
//
// # Redaction
//
// Connection parameters carry passwords, session cookies and keys. Never log
// them; log logging.Redacted("password") instead so the record shows the
// field was present. params.ConnectParams implements slog.LogValuer and
// redacts its secrets on its own.
package logging
