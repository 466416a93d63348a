package naming

import "fmt"

// New creates a new NamingError with the given kind and message.
// The classification is determined by the kind using default mappings.
//
// Example:
//
//	err := naming.New(naming.KindNameNotFound, "entry not found")
func New(kind Kind, message string) NamingError {
	return &namingError{
		kind:           kind,
		classification: DefaultClassification(kind),
		message:        message,
	}
}

// Newf creates a new NamingError with a formatted message.
//
// Example:
//
//	err := naming.Newf(naming.KindInvalidName, "invalid name %q: missing '='", raw)
func Newf(kind Kind, format string, args ...interface{}) NamingError {
	return New(kind, fmt.Sprintf(format, args...))
}
