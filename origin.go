package errtrace

// Origin identifies where an error occurred.
// Origins are string-based so they render naturally in logs and diagnostics.
type Origin string

const (
	// OriginUnhandled indicates an error nobody classified before it reached the trace.
	OriginUnhandled Origin = "Unhandled"

	// OriginClient indicates the caller sent something the server could not accept.
	OriginClient Origin = "Client"

	// OriginServer indicates a failure inside the server's own logic.
	OriginServer Origin = "Server"

	// OriginDatabase indicates a failure in the storage layer.
	OriginDatabase Origin = "Database"

	// OriginExternal indicates a failure in a downstream service.
	OriginExternal Origin = "External"
)

// String returns the name of the origin.
// The zero value renders as "Unknown".
func (o Origin) String() string {
	if o == "" {
		return unknownName
	}
	return string(o)
}

// IsClient returns true if the error was caused by the caller.
func (o Origin) IsClient() bool {
	return o == OriginClient
}

const unknownName = "Unknown"
