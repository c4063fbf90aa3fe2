package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger returns a context carrying logger. A nil logger stores the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the context logger, or the default when there is none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLibrary tags every entry logged through ctx with the library file.
func WithLibrary(ctx context.Context, path string) context.Context {
	logger := FromContext(ctx).With().Str("library", path).Logger()
	return WithLogger(ctx, &logger)
}
