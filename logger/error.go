package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is later
// logged as an attribute through a logger set up by ConfigureLoggingWithOptions,
// the pairs appear as top-level attributes of the record. The error still
// unwraps to err, so errors.Is and errors.As keep working.
//
//	return logger.AnnotateError(err, "path", path)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Time{}, slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*annotatedError)(nil)

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// annotatedErrorHandler expands the attributes of annotated errors into the
// record before passing it on. Other attributes pass through untouched.
type annotatedErrorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotatedErrorHandler)(nil)

func (h *annotatedErrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotatedErrorHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		attrs    []slog.Attr
		expanded bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		var ae *annotatedError

		if err, ok := attr.Value.Any().(error); ok && errors.As(err, &ae) {
			// Keep the original chain (including wrapping messages) as the value.
			attrs = append(attrs, slog.Any(attr.Key, err))
			attrs = append(attrs, ae.attrs...)
			expanded = true

			return true
		}

		attrs = append(attrs, attr)

		return true
	})

	if !expanded {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(attrs...)

	return h.inner.Handle(ctx, r)
}

func (h *annotatedErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotatedErrorHandler) WithGroup(name string) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithGroup(name)}
}
