// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

// contextKeyType is unexported so that the key never collides with other packages.
type contextKeyType struct{}

var contextKey = contextKeyType{}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext returns the Logger stored in ctx, or a logger that discards
// everything when ctx is nil or carries none.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nullLogger
	}

	if logger, ok := ctx.Value(contextKey).(Logger); ok {
		return logger
	}

	return nullLogger
}
