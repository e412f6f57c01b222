package log

import (
	"context"
	"log/slog"
)

// bridgeHandler is a slog.Handler that routes records through the sink's
// formatter and outputs.
type bridgeHandler struct {
	sink  *sink
	attrs []slog.Attr
}

func newBridgeHandler(s *sink) *bridgeHandler {
	return &bridgeHandler{sink: s}
}

// Enabled gates by the sink level.
func (h *bridgeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.sink.enabled(fromSlogLevel(level))
}

// Handle converts the slog record to an Entry and writes it to every output.
func (h *bridgeHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(Fields, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	entry := &Entry{
		Level:     fromSlogLevel(r.Level),
		Message:   r.Message,
		Fields:    fields,
		Timestamp: r.Time,
	}

	h.sink.mu.RLock()
	formatter, outputs := h.sink.formatter, h.sink.outputs
	h.sink.mu.RUnlock()

	formatted, err := formatter.Format(entry)
	if err != nil {
		return err
	}
	for _, out := range outputs {
		_ = out.Write(entry, formatted)
	}
	return nil
}

// WithAttrs returns a copy of the handler with additional base attributes.
func (h *bridgeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	if len(attrs) > 0 {
		nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	}
	return &nh
}

// WithGroup is accepted but groups are flattened by the formatters.
func (h *bridgeHandler) WithGroup(string) slog.Handler {
	nh := *h
	return &nh
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level <= slog.LevelDebug:
		return DebugLevel
	case level <= slog.LevelInfo:
		return InfoLevel
	case level <= slog.LevelWarn:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

func attrsFromFields(fields []Field) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}

// attrsToAny converts []slog.Attr to []any for slog.Logger.With.
func attrsToAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i := range attrs {
		out[i] = attrs[i]
	}
	return out
}
