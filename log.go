package errtrace

import (
	"context"
	"log/slog"
)

// LogValue implements slog.LogValuer. The stack is left out; use Trace.Log
// to emit it.
func (r *Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("origin", r.origin.String()),
		slog.String("type", r.typ.String()),
		slog.String("message", r.message),
	)
}

// LogValue implements slog.LogValuer, summarizing the trace by its ID, depth
// and top record.
func (t *Trace) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("id", t.id),
		slog.Int("depth", len(t.records)),
	}
	if len(t.records) > 0 {
		attrs = append(attrs, slog.Any("top", t.records[0]))
	}
	return slog.GroupValue(attrs...)
}

// Log emits one error-level entry per record, newest first.
// A nil logger falls back to slog.Default().
func (t *Trace) Log(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("trace_id", t.id))
	for i, r := range t.records {
		logger.LogAttrs(ctx, slog.LevelError, r.message,
			slog.Int("index", i),
			slog.String("origin", r.origin.String()),
			slog.String("type", r.typ.String()),
			slog.String("stack", r.stack),
		)
	}
}
