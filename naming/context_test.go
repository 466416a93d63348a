package naming

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(KindNameNotFound, "entry not found")
	err = WithContext(err, "dn", "cn=test,dc=example,dc=com")

	ctx := err.Context()
	require.NotNil(t, ctx)
	require.Equal(t, "cn=test,dc=example,dc=com", ctx["dn"])
}

func TestWithContext_Chaining(t *testing.T) {
	err := New(KindNoPermission, "insufficient access")
	err = WithContext(err, "operation", "modify")
	err = WithContext(err, "dn", "ou=people,dc=example,dc=com")
	err = WithContext(err, "result_code", 50)

	ctx := err.Context()
	require.Len(t, ctx, 3)
	require.Equal(t, "modify", ctx["operation"])
	require.Equal(t, "ou=people,dc=example,dc=com", ctx["dn"])
	require.Equal(t, 50, ctx["result_code"])
}

func TestWithContext_PreservesFields(t *testing.T) {
	cause := stderrors.New("busy")
	err := Wrap(cause, KindServiceUnavailable, "server busy")
	err = WithContext(err, "server", "ldap1")

	require.Equal(t, KindServiceUnavailable, err.Kind())
	require.Equal(t, ClassificationRetryable, err.Classification())
	require.Equal(t, "server busy", err.Message())
	require.Equal(t, cause, err.RootCause())
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, KindGeneric, err.Kind())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(KindGeneric, "internal")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())
}

func TestWithContextMap(t *testing.T) {
	err := New(KindSchemaViolation, "object class violation")
	err = WithContext(err, "attribute", "cn")
	err = WithContextMap(err, map[string]interface{}{
		"attribute":   "sn",
		"objectClass": "person",
	})

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "sn", ctx["attribute"])
	require.Equal(t, "person", ctx["objectClass"])
}

func TestWithContextMap_NilError(t *testing.T) {
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
}

func TestWithClassification(t *testing.T) {
	err := New(KindOperationNotSupported, "unwilling to perform")
	err = WithContext(err, "reason", "busy")
	err = WithClassification(err, ClassificationRetryable)

	require.Equal(t, KindOperationNotSupported, err.Kind())
	require.True(t, err.Classification().IsRetryable())
	require.Equal(t, "busy", err.Context()["reason"])
}

func TestWithClassification_NilError(t *testing.T) {
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}
