package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

func TestMappingTable_CoversEveryKind(t *testing.T) {
	// A new domain kind must get an explicit row.
	for _, kind := range ldap.Kinds() {
		assert.True(t, IsMapped(kind), "no mapping row for %s", kind)
	}
	assert.Len(t, MappingTable(), len(ldap.Kinds()))
}

func TestMapKind(t *testing.T) {
	tests := []struct {
		domain ldap.ErrorKind
		want   naming.Kind
	}{
		{ldap.KindAffectMultipleDsa, naming.KindGeneric},
		{ldap.KindAliasDereferencing, naming.KindGeneric},
		{ldap.KindAlias, naming.KindGeneric},
		{ldap.KindAttributeInUse, naming.KindAttributeInUse},
		{ldap.KindAuthentication, naming.KindAuthentication},
		{ldap.KindAuthenticationNotSupported, naming.KindAuthenticationNotSupported},
		{ldap.KindContextNotEmpty, naming.KindContextNotEmpty},
		{ldap.KindEntryAlreadyExists, naming.KindNameAlreadyBound},
		{ldap.KindInvalidAttributeType, naming.KindInvalidAttributeIdentifier},
		{ldap.KindInvalidAttributeValue, naming.KindInvalidAttributeValue},
		{ldap.KindInvalidDn, naming.KindInvalidName},
		{ldap.KindInvalidSearchFilter, naming.KindInvalidSearchFilter},
		{ldap.KindLoopDetected, naming.KindGeneric},
		{ldap.KindNoPermission, naming.KindNoPermission},
		{ldap.KindNoSuchAttribute, naming.KindNoSuchAttribute},
		{ldap.KindNoSuchObject, naming.KindNameNotFound},
		{ldap.KindOperationError, naming.KindGeneric},
		{ldap.KindOther, naming.KindGeneric},
		{ldap.KindPartialResult, naming.KindPartialResult},
		{ldap.KindProtocolError, naming.KindCommunication},
		{ldap.KindReferral, naming.KindReferral},
		{ldap.KindSchemaViolation, naming.KindSchemaViolation},
		{ldap.KindServiceUnavailable, naming.KindServiceUnavailable},
		{ldap.KindTimeLimitExceeded, naming.KindTimeLimitExceeded},
		{ldap.KindUnwillingToPerform, naming.KindOperationNotSupported},
	}
	require.Len(t, tests, len(ldap.Kinds()))

	for _, tt := range tests {
		t.Run(tt.domain.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapKind(tt.domain))
		})
	}
}

func TestMapKind_Unmapped(t *testing.T) {
	for _, kind := range []ldap.ErrorKind{ldap.KindUnknown, ldap.ErrorKind(-1), ldap.ErrorKind(4242)} {
		assert.False(t, IsMapped(kind))
		assert.Equal(t, naming.KindGeneric, MapKind(kind))
	}
}

func TestMappingTable_TargetsAreValid(t *testing.T) {
	for domain, kind := range MappingTable() {
		assert.True(t, kind.Valid(), "%s maps to undefined kind %q", domain, kind)
	}
}

func TestMappingTable_ReturnsCopy(t *testing.T) {
	table := MappingTable()
	table[ldap.KindNoSuchObject] = naming.KindGeneric

	assert.Equal(t, naming.KindNameNotFound, MapKind(ldap.KindNoSuchObject))
}
