// Package ldap provides the directory-access domain model: a closed set of
// error kinds mirroring LDAP result codes, the errors that carry them, and
// the structured distinguished name type Dn.
//
// Domain errors are plain Go errors. Every one of them implements
// KindedError, so callers can classify any error chain with errors.As:
//
//	var kinded ldap.KindedError
//	if errors.As(err, &kinded) && kinded.Kind() == ldap.KindNoSuchObject {
//	    // entry is gone
//	}
//
// Two kinds carry names: ReferralError (with a cursor over the referral
// URLs returned by the server) and PartialResultError. Both expose the
// remaining and resolved Dn of the interrupted operation.
//
// Errors returned by github.com/go-ldap/ldap/v3 can be lifted into the
// domain model with FromResultError, which classifies them by result code.
package ldap
