// Package bridge translates failures and names of the directory domain
// model (package ldap) into the generic directory-client API (package naming).
//
// # Errors
//
// Wrap turns any error into a naming.NamingError. Errors that already are
// naming errors are returned unchanged; everything else is classified by
// its domain kind through a fixed, total mapping table and wrapped so that
// the original error stays reachable as the root cause:
//
//	if err := dir.Add(entry); err != nil {
//	    return bridge.Wrap(err)
//	}
//
// Referral and partial-result errors become DeferredReferral and
// DeferredPartialResult. They hold the domain error and convert its
// embedded names only when RemainingName or ResolvedName is called, on
// every call. Results are not cached.
//
// # Names
//
// ToName and ToDn convert between ldap.Dn and naming.Name through their
// shared canonical string form. A nil input is the absent name and yields
// nil without error; a conversion failure is reported as an error of kind
// naming.KindInvalidName.
//
// # Controls
//
// WrapControls and UnwrapControls hand each control to a ControlCodec,
// preserving order and length; a nil slice maps to nil.
//
// # Concurrency
//
// Translation and name conversion are pure and safe for concurrent use.
// The referral cursor behind a DeferredReferral is not synchronized:
// SkipReferral and RetryReferral must not be called concurrently on the
// same error.
package bridge
