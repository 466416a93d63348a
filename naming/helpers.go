package naming

import (
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
//	var referral naming.ReferralError
//	if naming.As(err, &referral) {
//	    for referral.SkipReferral() { ... }
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
// Returns KindGeneric if the error is nil or not a NamingError.
//
// The kind of the outermost NamingError in the chain is returned.
func GetKind(err error) Kind {
	if err == nil {
		return KindGeneric
	}

	var namingErr NamingError
	if stderrors.As(err, &namingErr) {
		return namingErr.Kind()
	}

	return KindGeneric
}

// GetClassification extracts the Classification from an error.
// Returns ClassificationPermanent if the error is nil or not a NamingError.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) Classification {
	if err == nil {
		return ClassificationPermanent
	}

	var namingErr NamingError
	if stderrors.As(err, &namingErr) {
		return namingErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a NamingError (safe default).
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// RootCause returns the root cause recorded on the outermost NamingError in
// err's chain. Returns nil if err is nil or carries no NamingError.
//
// Example:
//
//	var ldapErr *ldap.Error
//	if errors.As(naming.RootCause(err), &ldapErr) {
//	    log.Printf("directory said: %s", ldapErr.Message())
//	}
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	var namingErr NamingError
	if stderrors.As(err, &namingErr) {
		return namingErr.RootCause()
	}

	return nil
}
