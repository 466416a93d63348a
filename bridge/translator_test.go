package bridge

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	goldap "github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}

func TestWrap_EntryAlreadyExists(t *testing.T) {
	domainErr := ldap.New(ldap.KindEntryAlreadyExists, "dn exists")

	err := Wrap(domainErr)

	require.NotNil(t, err)
	assert.Equal(t, naming.KindNameAlreadyBound, err.Kind())
	assert.Equal(t, "dn exists", err.Message())
	assert.Equal(t, naming.ClassificationPermanent, err.Classification())
	assert.Same(t, domainErr, err.RootCause())
	assert.True(t, stderrors.Is(err, domainErr))
}

func TestWrap_Alias(t *testing.T) {
	domainErr := ldap.New(ldap.KindAlias, "alias problem")

	err := Wrap(domainErr)

	assert.Equal(t, naming.KindGeneric, err.Kind())
	assert.Same(t, domainErr, err.RootCause())
}

func TestWrap_EveryKind(t *testing.T) {
	for _, kind := range ldap.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			domainErr := ldap.New(kind, "failure")

			err := Wrap(domainErr)

			require.NotNil(t, err)
			assert.Equal(t, MapKind(kind), err.Kind())
			assert.Same(t, domainErr, err.RootCause())
			assert.Equal(t, kind.String(), err.Context()[ContextDomainKind])
		})
	}
}

func TestWrap_Idempotent(t *testing.T) {
	namingErr := naming.New(naming.KindNameNotFound, "missing")

	once := Wrap(namingErr)
	twice := Wrap(once)

	assert.Same(t, namingErr, once)
	assert.Same(t, namingErr, twice)
}

func TestWrap_IdempotentOnTranslated(t *testing.T) {
	translated := Wrap(ldap.New(ldap.KindNoPermission, "denied"))
	assert.Same(t, translated, Wrap(translated))

	referral := Wrap(ldap.NewReferralError("moved", []string{"ldap://east/"}))
	assert.Same(t, referral, Wrap(referral))
}

func TestWrap_NamingErrorInChain(t *testing.T) {
	inner := naming.WithContext(naming.New(naming.KindServiceUnavailable, "busy"), "server", "ldap1")
	outer := fmt.Errorf("search: %w", inner)

	err := Wrap(outer)

	assert.Equal(t, naming.KindServiceUnavailable, err.Kind())
	assert.Equal(t, "busy", err.Message())
	assert.True(t, err.Classification().IsRetryable())
	assert.Equal(t, "ldap1", err.Context()["server"])
	assert.Equal(t, outer, err.RootCause())
}

func TestWrap_PlainError(t *testing.T) {
	plain := stderrors.New("socket closed")

	err := Wrap(plain)

	assert.Equal(t, naming.KindGeneric, err.Kind())
	assert.Equal(t, "socket closed", err.Message())
	assert.Equal(t, plain, err.RootCause())
	assert.Equal(t, ldap.KindUnknown.String(), err.Context()[ContextDomainKind])
}

func TestWrap_DomainErrorInChain(t *testing.T) {
	domainErr := ldap.New(ldap.KindNoSuchObject, "no such entry")
	outer := fmt.Errorf("lookup cn=test: %w", domainErr)

	err := Wrap(outer)

	assert.Equal(t, naming.KindNameNotFound, err.Kind())
	assert.Equal(t, "no such entry", err.Message())
	assert.Equal(t, outer, err.RootCause())
}

func TestWrap_DomainErrorWrapsNamingError(t *testing.T) {
	inner := naming.New(naming.KindCommunication, "socket closed")
	domainErr := ldap.Wrap(inner, ldap.KindNoSuchObject, "no such entry")

	err := Wrap(domainErr)

	assert.Equal(t, naming.KindNameNotFound, err.Kind())
	assert.Equal(t, "no such entry", err.Message())
	assert.Equal(t, naming.ClassificationPermanent, err.Classification())
	assert.Equal(t, "NoSuchObject", err.Context()[ContextDomainKind])
	assert.Same(t, domainErr, err.RootCause())
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrap_NamingErrorAboveDomainError(t *testing.T) {
	domainErr := ldap.New(ldap.KindNoSuchObject, "no such entry")
	inner := naming.Wrap(domainErr, naming.KindServiceUnavailable, "replica down")
	outer := fmt.Errorf("search: %w", inner)

	err := Wrap(outer)

	assert.Equal(t, naming.KindServiceUnavailable, err.Kind())
	assert.Equal(t, "replica down", err.Message())
	assert.Equal(t, outer, err.RootCause())
}

func TestWrap_WrappedReferralKeepsAccessors(t *testing.T) {
	inner := Wrap(ldap.NewReferralError("moved",
		[]string{"ldap://east/", "ldap://west/"},
		ldap.WithRemainingDn(ldap.MustParseDn("ou=sales,dc=example,dc=com")),
	))
	outer := fmt.Errorf("search: %w", inner)

	err := Wrap(outer)

	referral, ok := err.(naming.ReferralError)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, naming.KindReferral, referral.Kind())
	assert.Equal(t, "moved", referral.Message())
	assert.Equal(t, outer, referral.RootCause())
	assert.Equal(t, "Referral", referral.Context()[ContextDomainKind])
	assert.Equal(t, "ldap://east/", referral.ReferralInfo())

	remaining, nameErr := referral.RemainingName()
	require.NoError(t, nameErr)
	assert.Equal(t, "ou=sales,dc=example,dc=com", remaining.String())

	assert.True(t, referral.SkipReferral())
	assert.Equal(t, "ldap://west/", referral.ReferralInfo())
}

func TestWrap_WrappedPartialResultKeepsAccessors(t *testing.T) {
	inner := Wrap(ldap.NewPartialResultError("size limit",
		ldap.WithResolvedDn(ldap.MustParseDn("dc=example,dc=com")),
	))
	outer := fmt.Errorf("search: %w", inner)

	err := Wrap(outer)

	partial, ok := err.(naming.PartialResultError)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, outer, partial.RootCause())

	resolved, nameErr := partial.ResolvedName()
	require.NoError(t, nameErr)
	assert.Equal(t, "dc=example,dc=com", resolved.String())
}

func TestWrap_ResultError(t *testing.T) {
	resultErr := ldap.FromResultError(&goldap.Error{
		Err:        stderrors.New("no such entry"),
		ResultCode: goldap.LDAPResultNoSuchObject,
		MatchedDN:  "dc=example,dc=com",
	})

	err := Wrap(resultErr)

	assert.Equal(t, naming.KindNameNotFound, err.Kind())
	ctx := err.Context()
	assert.Equal(t, "NoSuchObject", ctx[ContextDomainKind])
	assert.Equal(t, uint16(goldap.LDAPResultNoSuchObject), ctx[ContextResultCode])
	assert.Equal(t, "dc=example,dc=com", ctx[ContextMatchedDn])

	var ldapErr *goldap.Error
	assert.True(t, stderrors.As(err, &ldapErr))
}

func TestWrap_ReferralBecomesDeferred(t *testing.T) {
	err := Wrap(ldap.NewReferralError("moved", []string{"ldap://east/"}))

	referral, ok := err.(*DeferredReferral)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, naming.KindReferral, referral.Kind())

	var asReferral naming.ReferralError
	assert.True(t, naming.As(err, &asReferral))
}

func TestWrap_PartialResultBecomesDeferred(t *testing.T) {
	err := Wrap(ldap.NewPartialResultError("size limit"))

	_, ok := err.(*DeferredPartialResult)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, naming.KindPartialResult, err.Kind())
}

func TestWrap_ReferralKindWithoutSource(t *testing.T) {
	// A plain domain error of kind Referral carries no cursor to adapt.
	err := Wrap(ldap.New(ldap.KindReferral, "referral"))

	assert.Equal(t, naming.KindReferral, err.Kind())
	_, ok := err.(*DeferredReferral)
	assert.False(t, ok)
}

type unmappedError struct{}

func (unmappedError) Error() string { return "unmapped" }

func (unmappedError) Kind() ldap.ErrorKind { return ldap.ErrorKind(999) }

func (unmappedError) Message() string { return "unmapped failure" }

func TestTranslator_LogsCatchAll(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := NewTranslator(WithLogger(logger))

	err := tr.Wrap(unmappedError{})

	assert.Equal(t, naming.KindGeneric, err.Kind())
	assert.Equal(t, "unmapped failure", err.Message())
	assert.Contains(t, buf.String(), "no mapping for error kind")

	buf.Reset()
	tr.Wrap(ldap.New(ldap.KindNoSuchObject, "missing"))
	assert.Empty(t, buf.String())
}

func TestWithLogger_NilIgnored(t *testing.T) {
	tr := NewTranslator(WithLogger(nil))
	require.NotNil(t, tr.logger)
	assert.NotPanics(t, func() { tr.Wrap(unmappedError{}) })
}

func TestWrap_Concurrent(t *testing.T) {
	tr := NewTranslator(WithMetrics(NewMetrics(nil)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kinds := ldap.Kinds()
			kind := kinds[i%len(kinds)]
			err := tr.Wrap(ldap.New(kind, "concurrent"))
			assert.Equal(t, MapKind(kind), err.Kind())
		}(i)
	}
	wg.Wait()
}
