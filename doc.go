// Package errtrace collects the errors raised while handling a single request
// into an ordered trace.
//
// A Trace holds Records newest first. The most recent record is the one
// reported to the caller; the full chain remains available for diagnostics.
//
// # Quick Start
//
// Recording errors:
//
//	trace := errtrace.New()
//	trace.Add(errtrace.OriginClient, errtrace.TypeValidation, err)
//
//	// or in one step
//	trace := errtrace.NewWithError(errtrace.OriginDatabase, errtrace.TypeNotFound, err)
//
// Falling back to a generic error when nothing specific is known:
//
//	return errtrace.New().WithGenericError()
//
// Reporting:
//
//	if trace.Len() > 0 {
//	    top := trace.Top() // client-facing error
//	    respond(w, top.Type(), top.Message())
//	}
//	trace.Log(ctx, logger) // one entry per record
//	trace.Print()          // formatted block per record on os.Stderr
//
// # Records
//
// A Record carries an Origin (where the error happened), a Type (what kind of
// error it is), the message and the stack captured when it was created.
// Records are immutable. A Record is an error and unwraps to the error it was
// built from, so errors.Is and errors.As see through it.
//
// # Request Lifecycle
//
// Each request owns its trace. A trace is not safe for concurrent use and
// must not be shared between requests. NewContext and FromContext carry a
// trace through a request's context; AddTo records onto it.
//
// # Empty Traces
//
// Top panics on an empty trace. Check Len, or call AddGenericError before
// reporting when the trace may be empty.
package errtrace
