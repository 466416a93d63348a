package naming

// NamingError is the base contract of every error raised through the
// directory-client API.
//
// NamingError provides a kind for categorization, a classification for
// retry logic, contextual metadata, and access to the root cause that
// triggered it. It is compatible with standard library error handling
// (errors.Is, errors.As, errors.Unwrap).
type NamingError interface {
	error

	// Kind returns the kind identifying the type of failure.
	Kind() Kind

	// Classification returns whether the error is retryable or permanent.
	Classification() Classification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// RootCause returns the error that triggered this one, kept for diagnostics.
	// Returns nil if the error was not caused by another error.
	RootCause() error

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
