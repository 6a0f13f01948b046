package errtrace

import (
	"context"
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var rec *errtrace.Record
//	if errtrace.As(err, &rec) {
//	    origin := rec.Origin()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetOrigin extracts the Origin of the outermost Record in err's chain.
// Returns OriginUnhandled if err is nil or carries no (non-nil) Record.
func GetOrigin(err error) Origin {
	if err == nil {
		return OriginUnhandled
	}

	var rec *Record
	if stderrors.As(err, &rec) && rec != nil {
		return rec.Origin()
	}

	return OriginUnhandled
}

// GetType extracts the Type of the outermost Record in err's chain.
// Returns TypeInternalUnhandled if err is nil or carries no (non-nil) Record.
func GetType(err error) Type {
	if err == nil {
		return TypeInternalUnhandled
	}

	var rec *Record
	if stderrors.As(err, &rec) && rec != nil {
		return rec.Type()
	}

	return TypeInternalUnhandled
}

// AddTo records err on the trace stored in ctx, keeping the Origin and Type
// of any Record already in err's chain. It returns false, recording nothing,
// if err is nil or ctx carries no trace.
//
// Example:
//
//	if err := svc.Save(ctx, user); err != nil {
//	    errtrace.AddTo(ctx, err)
//	    return err
//	}
func AddTo(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	t, ok := FromContext(ctx)
	if !ok {
		return false
	}
	t.AddRecord(newRecord(1, GetOrigin(err), GetType(err), err))
	return true
}
