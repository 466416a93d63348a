// Package naming provides the generic directory-client API surface.
//
// It defines the error taxonomy a directory client understands (kinds,
// retry classification, context metadata, root causes), the generic
// hierarchical Name type, protocol Controls in their encoded form, and the
// capability contracts for referral and partial-result errors. It is fully
// compatible with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := naming.New(naming.KindNameNotFound, "entry not found")
//
//	err := naming.Newf(naming.KindInvalidName, "invalid name %q", raw)
//
// Wrapping errors while keeping the root cause:
//
//	if err := store.Bind(dn); err != nil {
//	    return naming.Wrap(err, naming.KindNameAlreadyBound, "bind failed")
//	}
//
//	cause := naming.RootCause(err)
//
// Adding context:
//
//	err = naming.WithContext(err, "operation", "bind")
//
// Names:
//
//	name, err := naming.ParseName("ou=sales,dc=example,dc=com")
//	fmt.Println(name.Size(), name.Get(0)) // 3 dc=com
//
// # Error Kinds
//
// Every NamingError carries exactly one Kind. KindGeneric is the catch-all
// used whenever a failure has no more specific kind.
//
//   - Name errors: KindInvalidName, KindNameNotFound, KindNameAlreadyBound, KindContextNotEmpty
//   - Attribute errors: KindAttributeInUse, KindInvalidAttributeIdentifier, KindInvalidAttributeValue, KindNoSuchAttribute
//   - Security errors: KindAuthentication, KindAuthenticationNotSupported, KindNoPermission
//   - Service errors: KindCommunication, KindServiceUnavailable, KindTimeLimitExceeded, KindOperationNotSupported
//   - Search and schema errors: KindInvalidSearchFilter, KindSchemaViolation
//   - Continuation errors: KindReferral, KindPartialResult
//
// # Error Classification
//
// Errors are classified as retryable or permanent. Communication, service
// unavailability and time limits are retryable; every other kind is
// permanent. Use IsRetryable to make retry decisions.
//
// # Referrals and Partial Results
//
// ReferralError and PartialResultError extend NamingError with access to
// the remaining and resolved names. Implementations are free to derive the
// names lazily, so the accessors return an error alongside the Name.
package naming
