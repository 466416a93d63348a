package bridge

import (
	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// mappingTable maps every defined domain kind to its naming kind.
// It is built once at package initialization and never mutated.
// Kinds missing from the table map to naming.KindGeneric.
var mappingTable = map[ldap.ErrorKind]naming.Kind{
	// The naming API has no dedicated kind for these failures
	ldap.KindAffectMultipleDsa:  naming.KindGeneric,
	ldap.KindAliasDereferencing: naming.KindGeneric,
	ldap.KindAlias:              naming.KindGeneric,
	ldap.KindLoopDetected:       naming.KindGeneric,
	ldap.KindOperationError:     naming.KindGeneric,
	ldap.KindOther:              naming.KindGeneric,

	ldap.KindAttributeInUse:             naming.KindAttributeInUse,
	ldap.KindAuthentication:             naming.KindAuthentication,
	ldap.KindAuthenticationNotSupported: naming.KindAuthenticationNotSupported,
	ldap.KindContextNotEmpty:            naming.KindContextNotEmpty,
	ldap.KindEntryAlreadyExists:         naming.KindNameAlreadyBound,
	ldap.KindInvalidAttributeType:       naming.KindInvalidAttributeIdentifier,
	ldap.KindInvalidAttributeValue:      naming.KindInvalidAttributeValue,
	ldap.KindInvalidDn:                  naming.KindInvalidName,
	ldap.KindInvalidSearchFilter:        naming.KindInvalidSearchFilter,
	ldap.KindNoPermission:               naming.KindNoPermission,
	ldap.KindNoSuchAttribute:            naming.KindNoSuchAttribute,
	ldap.KindNoSuchObject:               naming.KindNameNotFound,
	ldap.KindProtocolError:              naming.KindCommunication,
	ldap.KindReferral:                   naming.KindReferral,
	ldap.KindPartialResult:              naming.KindPartialResult,
	ldap.KindSchemaViolation:            naming.KindSchemaViolation,
	ldap.KindServiceUnavailable:         naming.KindServiceUnavailable,
	ldap.KindTimeLimitExceeded:          naming.KindTimeLimitExceeded,
	ldap.KindUnwillingToPerform:         naming.KindOperationNotSupported,
}

// MapKind returns the naming kind for a domain kind.
// It is total: kinds without a row, KindUnknown included, map to naming.KindGeneric.
func MapKind(kind ldap.ErrorKind) naming.Kind {
	if mapped, ok := mappingTable[kind]; ok {
		return mapped
	}
	return naming.KindGeneric
}

// IsMapped reports whether kind has its own row in the mapping table.
func IsMapped(kind ldap.ErrorKind) bool {
	_, ok := mappingTable[kind]
	return ok
}

// MappingTable returns a copy of the mapping table.
func MappingTable() map[ldap.ErrorKind]naming.Kind {
	out := make(map[ldap.ErrorKind]naming.Kind, len(mappingTable))
	for k, v := range mappingTable {
		out[k] = v
	}
	return out
}
