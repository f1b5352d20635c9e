// Package logging defines the minimal structured-logging surface used by both
// the owner panel CLI and the stub backend. The variadic args are key-value
// pairs, e.g. log.Info(ctx, "reload finished", "owner", email, "cars", n).
package logging

import "context"

// Logger is a context-aware, structured logger.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
