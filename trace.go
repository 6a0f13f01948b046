package errtrace

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/google/uuid"
)

// Trace is an ordered collection of error records, newest first.
//
// A Trace belongs to a single request and is not safe for concurrent use.
// It only grows; there is no way to remove a record.
type Trace struct {
	id      string
	records []*Record
	sink    io.Writer
}

// New creates an empty trace.
func New(opts ...Option) *Trace {
	t := &Trace{
		id:   uuid.NewString(),
		sink: os.Stderr,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewWithError creates a trace holding a single record built from err.
// It is equivalent to New followed by Add.
//
// Example:
//
//	trace := errtrace.NewWithError(errtrace.OriginDatabase, errtrace.TypeNotFound, err)
func NewWithError(origin Origin, typ Type, err error, opts ...Option) *Trace {
	t := New(opts...)
	t.AddRecord(newRecord(1, origin, typ, err))
	return t
}

// ID returns the identifier used to correlate this trace's log entries.
func (t *Trace) ID() string {
	return t.id
}

// Add records err at the front of the trace, capturing the caller's stack.
func (t *Trace) Add(origin Origin, typ Type, err error) {
	t.AddRecord(newRecord(1, origin, typ, err))
}

// AddRecord inserts r at the front of the trace. A nil record is ignored.
func (t *Trace) AddRecord(r *Record) {
	if r == nil {
		return
	}
	t.records = slices.Insert(t.records, 0, r)
}

// AddGenericError inserts the catch-all record (see GenericRecord).
func (t *Trace) AddGenericError() {
	t.AddRecord(genericRecord(1))
}

// WithGenericError inserts the catch-all record and returns t for chaining.
//
// Example:
//
//	return errtrace.New().WithGenericError()
func (t *Trace) WithGenericError() *Trace {
	t.AddRecord(genericRecord(1))
	return t
}

// Records returns the trace's records, newest first.
// The returned slice is a copy; the records themselves are shared.
func (t *Trace) Records() []*Record {
	return slices.Clone(t.records)
}

// All returns an iterator over the records and their index, newest first.
func (t *Trace) All() iter.Seq2[int, *Record] {
	return slices.All(t.records)
}

// Len returns the number of records in the trace.
func (t *Trace) Len() int {
	return len(t.records)
}

// Top returns the most recently added record, the one meant for the client.
//
// Calling Top on an empty trace is a programmer error and panics. Check Len
// or call AddGenericError first when the trace may be empty.
func (t *Trace) Top() *Record {
	if len(t.records) == 0 {
		panic(fmt.Sprintf("errtrace: Top called on empty trace %s", t.id))
	}
	return t.records[0]
}
