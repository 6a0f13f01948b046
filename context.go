package errtrace

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying t.
//
// Example:
//
//	ctx = errtrace.NewContext(r.Context(), errtrace.New())
func NewContext(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the trace stored in ctx, if any.
func FromContext(ctx context.Context) (*Trace, bool) {
	t, ok := ctx.Value(contextKey{}).(*Trace)
	return t, ok && t != nil
}
