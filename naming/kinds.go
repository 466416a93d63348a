package naming

// Kind identifies the category of a naming failure.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// Name errors.

	// KindInvalidName indicates a name does not conform to the naming syntax.
	KindInvalidName Kind = "INVALID_NAME"

	// KindNameNotFound indicates a name could not be resolved because it is not bound.
	KindNameNotFound Kind = "NAME_NOT_FOUND"

	// KindNameAlreadyBound indicates a binding failed because the name is already bound.
	KindNameAlreadyBound Kind = "NAME_ALREADY_BOUND"

	// KindContextNotEmpty indicates an attempt to destroy a context that is not empty.
	KindContextNotEmpty Kind = "CONTEXT_NOT_EMPTY"

	// Attribute errors.

	// KindAttributeInUse indicates an attempt to add an attribute that already exists.
	KindAttributeInUse Kind = "ATTRIBUTE_IN_USE"

	// KindInvalidAttributeIdentifier indicates an attribute identifier is unknown or malformed.
	KindInvalidAttributeIdentifier Kind = "INVALID_ATTRIBUTE_IDENTIFIER"

	// KindInvalidAttributeValue indicates an attribute value conflicts with its definition.
	KindInvalidAttributeValue Kind = "INVALID_ATTRIBUTE_VALUE"

	// KindNoSuchAttribute indicates an attempt to access an attribute that does not exist.
	KindNoSuchAttribute Kind = "NO_SUCH_ATTRIBUTE"

	// Security errors.

	// KindAuthentication indicates the supplied credentials were rejected.
	KindAuthentication Kind = "AUTHENTICATION"

	// KindAuthenticationNotSupported indicates the requested authentication mechanism is unsupported.
	KindAuthenticationNotSupported Kind = "AUTHENTICATION_NOT_SUPPORTED"

	// KindNoPermission indicates the caller lacks permission for the operation.
	KindNoPermission Kind = "NO_PERMISSION"

	// Service errors.

	// KindCommunication indicates the client could not communicate with the directory.
	KindCommunication Kind = "COMMUNICATION"

	// KindServiceUnavailable indicates the directory service is not available.
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"

	// KindTimeLimitExceeded indicates an operation did not complete within its time limit.
	KindTimeLimitExceeded Kind = "TIME_LIMIT_EXCEEDED"

	// KindOperationNotSupported indicates the directory does not support the operation.
	KindOperationNotSupported Kind = "OPERATION_NOT_SUPPORTED"

	// Search and schema errors.

	// KindInvalidSearchFilter indicates a search filter is malformed.
	KindInvalidSearchFilter Kind = "INVALID_SEARCH_FILTER"

	// KindSchemaViolation indicates a method violates the schema.
	KindSchemaViolation Kind = "SCHEMA_VIOLATION"

	// Continuation errors.

	// KindReferral indicates the operation must be continued at another location.
	KindReferral Kind = "REFERRAL"

	// KindPartialResult indicates a result set is incomplete.
	KindPartialResult Kind = "PARTIAL_RESULT"

	// Generic errors.

	// KindGeneric is the catch-all for failures without a more specific kind.
	KindGeneric Kind = "NAMING_ERROR"
)

// allKinds lists every defined kind in declaration order.
var allKinds = []Kind{
	KindInvalidName,
	KindNameNotFound,
	KindNameAlreadyBound,
	KindContextNotEmpty,
	KindAttributeInUse,
	KindInvalidAttributeIdentifier,
	KindInvalidAttributeValue,
	KindNoSuchAttribute,
	KindAuthentication,
	KindAuthenticationNotSupported,
	KindNoPermission,
	KindCommunication,
	KindServiceUnavailable,
	KindTimeLimitExceeded,
	KindOperationNotSupported,
	KindInvalidSearchFilter,
	KindSchemaViolation,
	KindReferral,
	KindPartialResult,
	KindGeneric,
}

// Kinds returns every defined kind. The returned slice is a copy.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}
