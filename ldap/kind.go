package ldap

// ErrorKind identifies the failure a domain error reports.
// The zero value, KindUnknown, stands for a failure the model cannot name.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindAffectMultipleDsa
	KindAliasDereferencing
	KindAlias
	KindAttributeInUse
	KindAuthentication
	KindAuthenticationNotSupported
	KindContextNotEmpty
	KindEntryAlreadyExists
	KindInvalidAttributeType
	KindInvalidAttributeValue
	KindInvalidDn
	KindInvalidSearchFilter
	KindLoopDetected
	KindNoPermission
	KindNoSuchAttribute
	KindNoSuchObject
	KindOperationError
	KindOther
	KindPartialResult
	KindProtocolError
	KindReferral
	KindSchemaViolation
	KindServiceUnavailable
	KindTimeLimitExceeded
	KindUnwillingToPerform

	// kindSentinel marks the end of the defined kinds. Keep it last.
	kindSentinel
)

var kindNames = [...]string{
	KindUnknown:                    "Unknown",
	KindAffectMultipleDsa:          "AffectMultipleDsa",
	KindAliasDereferencing:         "AliasDereferencing",
	KindAlias:                      "Alias",
	KindAttributeInUse:             "AttributeInUse",
	KindAuthentication:             "Authentication",
	KindAuthenticationNotSupported: "AuthenticationNotSupported",
	KindContextNotEmpty:            "ContextNotEmpty",
	KindEntryAlreadyExists:         "EntryAlreadyExists",
	KindInvalidAttributeType:       "InvalidAttributeType",
	KindInvalidAttributeValue:      "InvalidAttributeValue",
	KindInvalidDn:                  "InvalidDn",
	KindInvalidSearchFilter:        "InvalidSearchFilter",
	KindLoopDetected:               "LoopDetected",
	KindNoPermission:               "NoPermission",
	KindNoSuchAttribute:            "NoSuchAttribute",
	KindNoSuchObject:               "NoSuchObject",
	KindOperationError:             "OperationError",
	KindOther:                      "Other",
	KindPartialResult:              "PartialResult",
	KindProtocolError:              "ProtocolError",
	KindReferral:                   "Referral",
	KindSchemaViolation:            "SchemaViolation",
	KindServiceUnavailable:         "ServiceUnavailable",
	KindTimeLimitExceeded:          "TimeLimitExceeded",
	KindUnwillingToPerform:         "UnwillingToPerform",
}

// String returns the kind's name, or "Unknown" for values outside the enumeration.
func (k ErrorKind) String() string {
	if k < 0 || k >= kindSentinel {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Valid reports whether k is a defined kind other than KindUnknown.
func (k ErrorKind) Valid() bool {
	return k > KindUnknown && k < kindSentinel
}

// Kinds returns every defined kind except KindUnknown, in declaration order.
func Kinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, int(kindSentinel)-1)
	for k := KindUnknown + 1; k < kindSentinel; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
// Returns KindUnknown and false if no kind has that name.
func ParseKind(name string) (ErrorKind, bool) {
	for k := KindUnknown + 1; k < kindSentinel; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnknown, false
}
