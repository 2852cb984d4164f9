package logging

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// WithLogger stores the provided logger on the context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext retrieves the logger from context, if present.
func FromContext(ctx context.Context) (*zap.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	return logger, ok
}

// L returns the context logger or a no-op logger.
func L(ctx context.Context) *zap.Logger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	return zap.NewNop()
}
