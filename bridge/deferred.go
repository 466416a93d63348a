package bridge

import (
	"fmt"

	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// PartialResultSource is the domain side of a partial result:
// a domain error that knows how far name resolution progressed.
// *ldap.PartialResultError and *ldap.ReferralError implement it.
type PartialResultSource interface {
	ldap.KindedError
	RemainingDn() *ldap.Dn
	ResolvedDn() *ldap.Dn
	ResolvedObject() interface{}
}

// ReferralSource is the domain side of a referral: a partial result that
// also owns a cursor over referral URLs. *ldap.ReferralError implements it.
type ReferralSource interface {
	PartialResultSource
	ReferralInfo() interface{}
	SkipReferral() bool
	RetryReferral()
	ReferralContext(env map[string]interface{}) (interface{}, error)
}

// deferredBase carries the naming.NamingError surface shared by both
// deferred adapters.
type deferredBase struct {
	kind       naming.Kind
	message    string
	cause      error
	context    map[string]interface{}
	translator *Translator
}

// Error returns "[KIND] message: cause".
func (d *deferredBase) Error() string {
	return fmt.Sprintf("[%s] %s: %v", d.kind, d.message, d.cause)
}

// Kind returns the naming kind.
func (d *deferredBase) Kind() naming.Kind {
	return d.kind
}

// Classification returns the default classification of the kind.
func (d *deferredBase) Classification() naming.Classification {
	return naming.DefaultClassification(d.kind)
}

// Message returns the domain error's message.
func (d *deferredBase) Message() string {
	return d.message
}

// Context returns a copy of the attached metadata.
func (d *deferredBase) Context() map[string]interface{} {
	if d.context == nil {
		return nil
	}
	out := make(map[string]interface{}, len(d.context))
	for k, v := range d.context {
		out[k] = v
	}
	return out
}

// RootCause returns the original domain error.
func (d *deferredBase) RootCause() error {
	return d.cause
}

// Unwrap returns the original domain error.
func (d *deferredBase) Unwrap() error {
	return d.cause
}

// DeferredReferral presents a domain referral error as a naming.ReferralError.
//
// No name is converted when a DeferredReferral is created. RemainingName and
// ResolvedName convert the domain Dn on every call; results are not cached.
// Cursor operations act directly on the wrapped domain error.
type DeferredReferral struct {
	deferredBase
	source ReferralSource
}

var _ naming.ReferralError = (*DeferredReferral)(nil)

// NewDeferredReferral wraps src with the default Translator.
func NewDeferredReferral(src ReferralSource) *DeferredReferral {
	return newDeferredReferral(defaultTranslator, src, src, errorContext(ldap.KindReferral, src))
}

func newDeferredReferral(t *Translator, src ReferralSource, cause error, ctx map[string]interface{}) *DeferredReferral {
	return &DeferredReferral{
		deferredBase: deferredBase{
			kind:       naming.KindReferral,
			message:    src.Message(),
			cause:      cause,
			context:    ctx,
			translator: t,
		},
		source: src,
	}
}

// SkipReferral discards the current referral of the domain error.
func (d *DeferredReferral) SkipReferral() bool {
	return d.source.SkipReferral()
}

// RetryReferral asks the domain error to retry its current referral.
func (d *DeferredReferral) RetryReferral() {
	d.source.RetryReferral()
}

// ReferralInfo returns the domain error's current referral, untouched.
func (d *DeferredReferral) ReferralInfo() interface{} {
	return d.source.ReferralInfo()
}

// ReferralContext follows the current referral through the domain error.
// A failure is translated into a naming error and returned.
func (d *DeferredReferral) ReferralContext(env naming.Environment) (naming.Context, error) {
	resolved, err := d.source.ReferralContext(env)
	if err != nil {
		return nil, d.translator.Wrap(err)
	}

	ctx, ok := resolved.(naming.Context)
	if !ok {
		return nil, naming.Newf(naming.KindOperationNotSupported,
			"referral resolver returned %T, not a naming context", resolved)
	}
	return ctx, nil
}

// RemainingName converts the domain error's remaining Dn.
func (d *DeferredReferral) RemainingName() (*naming.Name, error) {
	return d.translator.ToName(d.source.RemainingDn())
}

// ResolvedName converts the domain error's resolved Dn.
func (d *DeferredReferral) ResolvedName() (*naming.Name, error) {
	return d.translator.ToName(d.source.ResolvedDn())
}

// ResolvedObject returns the domain error's resolved object, untyped.
func (d *DeferredReferral) ResolvedObject() interface{} {
	return d.source.ResolvedObject()
}

// DeferredPartialResult presents a domain partial-result error as a
// naming.PartialResultError, converting names on every accessor call.
type DeferredPartialResult struct {
	deferredBase
	source PartialResultSource
}

var _ naming.PartialResultError = (*DeferredPartialResult)(nil)

// NewDeferredPartialResult wraps src with the default Translator.
func NewDeferredPartialResult(src PartialResultSource) *DeferredPartialResult {
	return newDeferredPartialResult(defaultTranslator, src, src, errorContext(ldap.KindPartialResult, src))
}

func newDeferredPartialResult(t *Translator, src PartialResultSource, cause error, ctx map[string]interface{}) *DeferredPartialResult {
	return &DeferredPartialResult{
		deferredBase: deferredBase{
			kind:       naming.KindPartialResult,
			message:    src.Message(),
			cause:      cause,
			context:    ctx,
			translator: t,
		},
		source: src,
	}
}

// RemainingName converts the domain error's remaining Dn.
func (d *DeferredPartialResult) RemainingName() (*naming.Name, error) {
	return d.translator.ToName(d.source.RemainingDn())
}

// ResolvedName converts the domain error's resolved Dn.
func (d *DeferredPartialResult) ResolvedName() (*naming.Name, error) {
	return d.translator.ToName(d.source.ResolvedDn())
}

// ResolvedObject returns the domain error's resolved object, untyped.
func (d *DeferredPartialResult) ResolvedObject() interface{} {
	return d.source.ResolvedObject()
}
