// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ctxlog carries a slog.Logger in a context.Context so that library
// code can log without a logger parameter threaded through every call.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey struct{}

// NewJSONLogger returns a new context carrying a JSON logger writing to w.
func NewJSONLogger(ctx context.Context, w io.Writer, opts *slog.HandlerOptions) context.Context {
	return Context(ctx, slog.New(slog.NewJSONHandler(w, opts)))
}

// Context returns a new context carrying the given logger.
func Context(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

var discardLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Logger returns the logger carried by ctx, or a discard logger when none
// is set.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return discardLogger
}

// ContextWith returns a new context whose embedded logger carries the given
// attributes. The context is returned unchanged when it carries no logger.
func ContextWith(ctx context.Context, attributes ...any) context.Context {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return ctx
	}
	return Context(ctx, l.With(attributes...))
}
