package naming

// Classification indicates whether a failed directory operation may succeed
// if attempted again.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: lost connections, an unavailable server, an exceeded time limit.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: malformed names, missing entries, permission denials.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps kinds to their default classification.
var defaultClassifications = map[Kind]Classification{
	// Retryable errors (temporary failures)
	KindCommunication:      ClassificationRetryable,
	KindServiceUnavailable: ClassificationRetryable,
	KindTimeLimitExceeded:  ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	KindInvalidName:                ClassificationPermanent,
	KindNameNotFound:               ClassificationPermanent,
	KindNameAlreadyBound:           ClassificationPermanent,
	KindContextNotEmpty:            ClassificationPermanent,
	KindAttributeInUse:             ClassificationPermanent,
	KindInvalidAttributeIdentifier: ClassificationPermanent,
	KindInvalidAttributeValue:      ClassificationPermanent,
	KindNoSuchAttribute:            ClassificationPermanent,
	KindAuthentication:             ClassificationPermanent,
	KindAuthenticationNotSupported: ClassificationPermanent,
	KindNoPermission:               ClassificationPermanent,
	KindOperationNotSupported:      ClassificationPermanent,
	KindInvalidSearchFilter:        ClassificationPermanent,
	KindSchemaViolation:            ClassificationPermanent,

	// Continuation errors are resolved by following the referral, not by retrying
	KindReferral:      ClassificationPermanent,
	KindPartialResult: ClassificationPermanent,

	KindGeneric: ClassificationPermanent,
}

// DefaultClassification returns the default classification for a kind.
// Returns ClassificationPermanent if the kind is not known (safe default).
func DefaultClassification(kind Kind) Classification {
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}
