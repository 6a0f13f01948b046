package errtrace

import "io"

// Option configures a Trace.
type Option func(*Trace)

// WithID sets the trace ID instead of generating one.
// An empty id is ignored.
func WithID(id string) Option {
	return func(t *Trace) {
		if id != "" {
			t.id = id
		}
	}
}

// WithWriter sets the diagnostic sink Print writes to. Defaults to os.Stderr.
// A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(t *Trace) {
		if w != nil {
			t.sink = w
		}
	}
}
