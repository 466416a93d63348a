package naming

import (
	"errors"
	"fmt"
)

// Wrap creates a NamingError of the given kind whose root cause is err.
// The root cause is accessible via RootCause() and Unwrap(), so errors.Is
// and errors.As keep matching the original error.
//
// If err is itself a NamingError, its classification is preserved.
// Otherwise, the default classification for the kind is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.Bind(dn); err != nil {
//	    return naming.Wrap(err, naming.KindNameAlreadyBound, "bind failed")
//	}
func Wrap(err error, kind Kind, message string) NamingError {
	return WrapWithContext(err, kind, message, nil)
}

// Wrapf wraps an error with a formatted message while preserving the root cause.
//
// Returns nil if err is nil.
func Wrapf(err error, kind Kind, format string, args ...interface{}) NamingError {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return naming.WrapWithContext(err, naming.KindNameNotFound, "lookup failed", map[string]interface{}{
//	    "dn": dn.String(),
//	})
func WrapWithContext(err error, kind Kind, message string, ctx map[string]interface{}) NamingError {
	if err == nil {
		return nil
	}

	classification := DefaultClassification(kind)
	var namingErr NamingError
	if errors.As(err, &namingErr) {
		classification = namingErr.Classification()
	}

	return &namingError{
		kind:           kind,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
