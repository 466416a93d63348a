package bridge

import (
	"errors"
	"log/slog"

	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// Context keys attached to translated errors.
const (
	ContextDomainKind = "domain_kind"
	ContextResultCode = "result_code"
	ContextMatchedDn  = "matched_dn"
)

// Translator converts arbitrary errors into naming errors.
// A Translator is immutable after construction and safe for concurrent use.
type Translator struct {
	logger  *slog.Logger
	metrics *Metrics
}

// NewTranslator creates a Translator with the given options.
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTranslator = NewTranslator()

// Wrap translates err with the default Translator.
// See Translator.Wrap.
func Wrap(err error) naming.NamingError {
	return defaultTranslator.Wrap(err)
}

// Wrap translates err into the closest naming error.
//
// The outermost naming or domain error in err's chain decides the outcome:
//   - err itself, if it already is a naming.NamingError;
//   - for a naming error above any domain error, an error of the same kind,
//     message and context. Referral and partial-result naming errors are
//     rebuilt around the domain error below them, or returned as is when
//     there is none;
//   - a DeferredReferral or DeferredPartialResult for domain referral and
//     partial-result errors;
//   - a naming error of the kind the mapping table assigns to the domain
//     kind, or naming.KindGeneric if the chain holds no domain error.
//
// Every result other than an existing naming error has err as its root cause.
// Returns nil if err is nil.
func (t *Translator) Wrap(err error) naming.NamingError {
	if err == nil {
		return nil
	}

	if namingErr, ok := err.(naming.NamingError); ok {
		t.metrics.ObservePassthrough()
		return namingErr
	}

	inner, kinded := outermostTyped(err)
	if inner != nil {
		t.metrics.ObservePassthrough()
		return t.rewrap(err, inner)
	}

	domainKind := ldap.KindUnknown
	message := err.Error()
	if kinded != nil {
		domainKind = kinded.Kind()
		message = kinded.Message()
	}

	kind := MapKind(domainKind)
	if !IsMapped(domainKind) {
		t.logger.Debug("no mapping for error kind, using catch-all",
			"domain_kind", domainKind.String(),
			"naming_kind", string(kind),
			"error", err)
	}
	t.metrics.ObserveTranslation(domainKind, kind)

	ctx := errorContext(domainKind, kinded)

	switch kind {
	case naming.KindReferral:
		var src ReferralSource
		if errors.As(err, &src) {
			return newDeferredReferral(t, src, err, ctx)
		}
	case naming.KindPartialResult:
		var src PartialResultSource
		if errors.As(err, &src) {
			return newDeferredPartialResult(t, src, err, ctx)
		}
	}

	wrapped := naming.WrapWithContext(err, kind, message, ctx)
	if class := naming.DefaultClassification(kind); wrapped.Classification() != class {
		// A naming error below the domain error lent its classification.
		return naming.WithClassification(wrapped, class)
	}
	return wrapped
}

// rewrap carries a naming error found inside err's chain over to err.
func (t *Translator) rewrap(err error, inner naming.NamingError) naming.NamingError {
	ctx := inner.Context()

	switch inner.(type) {
	case naming.ReferralError:
		var src ReferralSource
		if errors.As(err, &src) {
			return newDeferredReferral(t, src, err, ctx)
		}
		return inner
	case naming.PartialResultError:
		var src PartialResultSource
		if errors.As(err, &src) {
			return newDeferredPartialResult(t, src, err, ctx)
		}
		return inner
	}

	return naming.WrapWithContext(err, inner.Kind(), inner.Message(), ctx)
}

// outermostTyped returns the first naming error or domain error in err's
// chain, whichever comes first. At most one of the results is non-nil.
func outermostTyped(err error) (naming.NamingError, ldap.KindedError) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch typed := e.(type) {
		case naming.NamingError:
			return typed, nil
		case ldap.KindedError:
			return nil, typed
		}
	}

	// errors.Unwrap does not follow multi-error trees; fall back to errors.As.
	var kinded ldap.KindedError
	if errors.As(err, &kinded) {
		return nil, kinded
	}
	var namingErr naming.NamingError
	if errors.As(err, &namingErr) {
		return namingErr, nil
	}
	return nil, nil
}

// ToName converts dn like the package-level ToName and records the outcome.
func (t *Translator) ToName(dn *ldap.Dn) (*naming.Name, error) {
	name, err := ToName(dn)
	t.metrics.ObserveNameConversion(DirectionToName, err)
	return name, err
}

// ToDn converts name like the package-level ToDn and records the outcome.
func (t *Translator) ToDn(name *naming.Name) (*ldap.Dn, error) {
	dn, err := ToDn(name)
	t.metrics.ObserveNameConversion(DirectionToDn, err)
	return dn, err
}

func errorContext(domainKind ldap.ErrorKind, kinded ldap.KindedError) map[string]interface{} {
	ctx := map[string]interface{}{
		ContextDomainKind: domainKind.String(),
	}
	if kinded == nil {
		return ctx
	}

	var withCode interface{ ResultCode() uint16 }
	if errors.As(kinded, &withCode) {
		ctx[ContextResultCode] = withCode.ResultCode()
	}

	var withMatched interface{ MatchedDn() *ldap.Dn }
	if errors.As(kinded, &withMatched) {
		if matched := withMatched.MatchedDn(); matched != nil {
			ctx[ContextMatchedDn] = matched.String()
		}
	}
	return ctx
}
