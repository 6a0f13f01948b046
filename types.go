package errtrace

// Type represents the category of an error.
type Type string

const (
	// Internal errors.

	// TypeInternalUnhandled indicates an internal error that no handler recognized.
	TypeInternalUnhandled Type = "InternalUnhandled"

	// TypeInternalHandled indicates an internal error that a handler recognized and reported.
	TypeInternalHandled Type = "InternalHandled"

	// Request errors.

	// TypeValidation indicates the request failed input validation.
	TypeValidation Type = "Validation"

	// TypeNotFound indicates a requested resource does not exist.
	TypeNotFound Type = "NotFound"

	// TypeAlreadyExists indicates a resource already exists and cannot be created again.
	TypeAlreadyExists Type = "AlreadyExists"

	// TypeConflict indicates a resource state conflict that prevents the operation.
	TypeConflict Type = "Conflict"

	// Permission errors.

	// TypeUnauthorized indicates the request lacks valid authentication credentials.
	TypeUnauthorized Type = "Unauthorized"

	// TypeForbidden indicates the authenticated caller lacks permission for the operation.
	TypeForbidden Type = "Forbidden"

	// Availability errors.

	// TypeTimeout indicates an operation exceeded its time limit.
	TypeTimeout Type = "Timeout"

	// TypeUnavailable indicates a dependency is temporarily unavailable.
	TypeUnavailable Type = "Unavailable"

	// TypeNotImplemented indicates the requested functionality is not implemented.
	TypeNotImplemented Type = "NotImplemented"
)

// String returns the name of the type.
// The zero value renders as "Unknown".
func (t Type) String() string {
	if t == "" {
		return unknownName
	}
	return string(t)
}

// IsInternal returns true for the internal categories, whose messages are not
// meant for the client.
func (t Type) IsInternal() bool {
	return t == TypeInternalUnhandled || t == TypeInternalHandled
}
