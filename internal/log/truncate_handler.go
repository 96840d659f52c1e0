package log

import (
	"context"
	"io"
	"log/slog"
)

// DefaultValueLimit is the maximum attribute value length before
// truncation. Payloads handed to processors can be arbitrarily large,
// and debug logging must not reproduce them wholesale.
const DefaultValueLimit = 256

// truncationMarker is appended to values that were cut short.
const truncationMarker = "...(truncated)"

// TruncateHandler wraps an slog.Handler and truncates oversized string
// attribute values before passing records on.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can keep logging payloads without worrying about size
type TruncateHandler struct {
	// handler is the underlying slog handler that receives records.
	handler slog.Handler

	// limit is the maximum string attribute value length.
	limit int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given handler.
// A limit <= 0 falls back to DefaultValueLimit. If handler is nil, the
// default slog handler is used.
func NewTruncateHandler(handler slog.Handler, limit int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if limit <= 0 {
		limit = DefaultValueLimit
	}
	return &TruncateHandler{handler: handler, limit: limit}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new handler with the given attributes added,
// truncated first.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	truncated := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		truncated[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(truncated), limit: h.limit}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), limit: h.limit}
}

// truncateAttr truncates a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		truncated := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			truncated[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(truncated...)}
	}

	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); len(s) > h.limit {
			return slog.String(a.Key, s[:h.limit]+truncationMarker)
		}
	}

	return a
}

// NewLogger creates a text-format slog.Logger with payload truncation.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTruncateHandler(textHandler, DefaultValueLimit))
}

// NewJSONLogger creates a JSON-format slog.Logger with payload truncation.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	return slog.New(NewTruncateHandler(jsonHandler, DefaultValueLimit))
}
