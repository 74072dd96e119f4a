// Package logger provides the slog logger used by dockerize-me commands. The logger travels
// in the command context.
package logger

import (
	"context"
	"log/slog"
)

// ctxKey is used to store the logger in the ctx. Using a new type avoids collisions.
type ctxKey struct{}

// WithContext sets the logger as the logger for the context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger from the context, or a new cli logger if there isn't one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return new()
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return new()
}
