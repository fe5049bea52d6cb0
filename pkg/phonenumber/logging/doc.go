// Package logging provides a minimal logging facade for the phone-number
// boundary.
//
// The Logger interface wraps a subset of log/slog so that applications can
// supply their own implementation for testing or integration with an
// existing logging system:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Build a handler from configuration strings
//	h, err := logging.NewHandler("debug", "json", os.Stderr)
//	logger = logging.New(slog.New(h))
//
// # Redaction
//
// Phone numbers are personal data. Never pass a raw number as a log
// argument; use Number, which keeps only the last two digits:
//
//	logger.Warn(ctx, "parse failed", logging.Number("number", "0129602189"))
//	// Logs: number="********89"
//
// Values that must not appear at all are logged with Redacted:
//
//	logger.Info(ctx, "config loaded", logging.Redacted("path"))
//	// Logs: path="[redacted]"
package logging
