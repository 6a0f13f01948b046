package errtrace

import "fmt"

// GenericMessage is the message of the catch-all record added when no
// specific error information is available.
const GenericMessage = "Internal server error."

// Record is a single captured error occurrence.
// Records are immutable once created and are constructed through package functions.
type Record struct {
	origin  Origin
	typ     Type
	message string
	stack   string
	cause   error
}

// NewRecord creates a Record from err, capturing the caller's stack.
// The message is err.Error(); a nil err yields an empty message and no cause.
//
// Example:
//
//	rec := errtrace.NewRecord(errtrace.OriginClient, errtrace.TypeValidation, err)
func NewRecord(origin Origin, typ Type, err error) *Record {
	return newRecord(1, origin, typ, err)
}

// NewRecordf creates a Record with a formatted message and no cause.
//
// Example:
//
//	rec := errtrace.NewRecordf(errtrace.OriginClient, errtrace.TypeValidation, "name too long: %d", n)
func NewRecordf(origin Origin, typ Type, format string, args ...interface{}) *Record {
	return &Record{
		origin:  origin,
		typ:     typ,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(1),
	}
}

// GenericRecord creates the catch-all record: OriginUnhandled,
// TypeInternalUnhandled and GenericMessage.
func GenericRecord() *Record {
	return genericRecord(1)
}

// newRecord builds a record whose stack starts skip frames above newRecord's caller.
func newRecord(skip int, origin Origin, typ Type, err error) *Record {
	r := &Record{
		origin: origin,
		typ:    typ,
		stack:  captureStack(skip + 1),
		cause:  err,
	}
	if err != nil {
		r.message = err.Error()
	}
	return r
}

func genericRecord(skip int) *Record {
	return &Record{
		origin:  OriginUnhandled,
		typ:     TypeInternalUnhandled,
		message: GenericMessage,
		stack:   captureStack(skip + 1),
	}
}

// Error returns the record's message, or an empty string for a nil record.
func (r *Record) Error() string {
	if r == nil {
		return ""
	}
	return r.message
}

// Origin returns where the error occurred.
func (r *Record) Origin() Origin {
	return r.origin
}

// Type returns the category of the error.
func (r *Record) Type() Type {
	return r.typ
}

// Message returns the underlying error message.
func (r *Record) Message() string {
	return r.message
}

// Stack returns the stack text captured when the record was created.
func (r *Record) Stack() string {
	return r.stack
}

// Unwrap returns the error the record was created from, or nil.
func (r *Record) Unwrap() error {
	return r.cause
}

// format renders the record as one block of the trace's diagnostic output.
func (r *Record) format() string {
	return fmt.Sprintf("ERROR: %s (origin: %s, type: %s)\n%s\n", r.message, r.origin, r.typ, r.stack)
}
