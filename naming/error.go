package naming

import "fmt"

// namingError is the concrete implementation of NamingError.
// It is private to enforce construction through package functions.
type namingError struct {
	kind           Kind
	classification Classification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[KIND] message" or "[KIND] message: cause" if a root cause is present.
func (e *namingError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Kind returns the error kind.
func (e *namingError) Kind() Kind {
	return e.kind
}

// Classification returns the error classification.
func (e *namingError) Classification() Classification {
	return e.classification
}

// Message returns the error message.
func (e *namingError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *namingError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// RootCause returns the error this one was created from.
func (e *namingError) RootCause() error {
	return e.cause
}

// Unwrap returns the root cause for standard library compatibility.
func (e *namingError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
