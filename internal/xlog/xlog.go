// Package xlog provides the structured-logging plumbing shared by the
// library packages. It never logs above Debug, and defaults to a
// no-op logger so importing this module is silent unless a caller
// opts in.
package xlog

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

var (
	defaultOnce   sync.Once
	defaultLogger zerolog.Logger
)

// Default returns the package-wide fallback logger: a no-op unless
// XMLTREE_DEBUG is set in the environment, in which case it writes
// Debug-and-above events to stderr. Library code should prefer
// FromContext over Default so a caller's logger is always honored
// when provided.
func Default() zerolog.Logger {
	defaultOnce.Do(func() {
		if os.Getenv("XMLTREE_DEBUG") != "" {
			defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			defaultLogger = zerolog.Nop()
		}
	})
	return defaultLogger
}

// WithLogger returns a context carrying logger, for passing a
// caller-supplied zerolog.Logger down to the façade and the dialect
// registry, the only packages that log.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, or Default() if none
// was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return logger
	}
	return Default()
}

// NewInvocation returns a logger tagged with a fresh correlation id
// for one façade call (analyze_schema/analyze/chunk), so that
// concurrent invocations against the same file can be told apart in
// logs. The id never participates in chunk_id or any other
// content-derived value.
func NewInvocation(ctx context.Context, op, path string) zerolog.Logger {
	return FromContext(ctx).With().
		Str("run_id", uuid.NewString()).
		Str("op", op).
		Str("path", path).
		Logger()
}

// Discard returns a logger that writes nowhere, for tests that want
// an explicit logger value rather than relying on Default's env-var
// switch.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
