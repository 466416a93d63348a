package naming

import "errors"

// WithContext adds a single context field to an error.
// Returns a new NamingError with the field added; existing fields are preserved.
//
// If err is not a NamingError, it is converted to one with KindGeneric.
// The result is always a plain NamingError: capability interfaces such as
// ReferralError are not carried over, so attach context before handing a
// referral to callers that need its accessors.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = naming.WithContext(err, "operation", "modify")
func WithContext(err error, key string, value interface{}) NamingError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a NamingError, it is converted to one with KindGeneric.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) NamingError {
	if err == nil {
		return nil
	}

	namingErr := asNamingError(err)

	merged := make(map[string]interface{})
	for k, v := range namingErr.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &namingError{
		kind:           namingErr.Kind(),
		classification: namingErr.Classification(),
		message:        namingErr.Message(),
		context:        merged,
		cause:          namingErr.RootCause(),
	}
}

// WithClassification overrides the classification of an error.
//
// If err is not a NamingError, it is converted to one with KindGeneric.
// Returns nil if err is nil.
//
// Example:
//
//	// A busy server is worth retrying even though the kind is permanent
//	err = naming.WithClassification(err, naming.ClassificationRetryable)
func WithClassification(err error, classification Classification) NamingError {
	if err == nil {
		return nil
	}

	namingErr := asNamingError(err)

	return &namingError{
		kind:           namingErr.Kind(),
		classification: classification,
		message:        namingErr.Message(),
		context:        namingErr.Context(),
		cause:          namingErr.RootCause(),
	}
}

// asNamingError returns the first NamingError in err's chain, or converts
// err into a KindGeneric NamingError caused by err.
func asNamingError(err error) NamingError {
	var namingErr NamingError
	if errors.As(err, &namingErr) {
		return namingErr
	}
	return &namingError{
		kind:           KindGeneric,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
