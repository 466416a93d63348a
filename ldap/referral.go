package ldap

// ReferralResolver creates a context for continuing an operation at the
// given referral URL. The returned value is opaque to the domain model.
type ReferralResolver func(referral string, env map[string]interface{}) (interface{}, error)

// resolution holds the names and object an interrupted operation reached.
type resolution struct {
	remainingDn    *Dn
	resolvedDn     *Dn
	resolvedObject interface{}
	resolver       ReferralResolver
	cause          error
}

// ResolutionOption configures a ReferralError or PartialResultError.
type ResolutionOption func(*resolution)

// WithRemainingDn sets the part of the target name that was not resolved.
func WithRemainingDn(dn *Dn) ResolutionOption {
	return func(r *resolution) {
		r.remainingDn = dn
	}
}

// WithResolvedDn sets the part of the target name that was resolved.
func WithResolvedDn(dn *Dn) ResolutionOption {
	return func(r *resolution) {
		r.resolvedDn = dn
	}
}

// WithResolvedObject sets the object bound to the resolved name.
func WithResolvedObject(obj interface{}) ResolutionOption {
	return func(r *resolution) {
		r.resolvedObject = obj
	}
}

// WithResolver sets the function used to follow referrals.
// It is ignored by PartialResultError.
func WithResolver(resolver ReferralResolver) ResolutionOption {
	return func(r *resolution) {
		r.resolver = resolver
	}
}

// WithCause records the error that triggered the referral or partial result.
func WithCause(err error) ResolutionOption {
	return func(r *resolution) {
		r.cause = err
	}
}

func newResolution(opts []ResolutionOption) resolution {
	var r resolution
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// ReferralError reports that an operation must be continued at one of the
// referral URLs returned by the server.
//
// It keeps a cursor over those URLs. The cursor is mutated by SkipReferral
// and RetryReferral without locking: a ReferralError must not be shared
// between goroutines that move its cursor.
type ReferralError struct {
	message   string
	referrals []string
	index     int
	retries   int
	resolution
}

// NewReferralError creates a referral error over the given referral URLs.
// The referrals slice is copied.
func NewReferralError(message string, referrals []string, opts ...ResolutionOption) *ReferralError {
	refs := make([]string, len(referrals))
	copy(refs, referrals)

	return &ReferralError{
		message:    message,
		referrals:  refs,
		resolution: newResolution(opts),
	}
}

// Error implements the error interface.
func (e *ReferralError) Error() string {
	return formatError(KindReferral, e.message, e.cause)
}

// Kind returns KindReferral.
func (e *ReferralError) Kind() ErrorKind {
	return KindReferral
}

// Message returns the error message.
func (e *ReferralError) Message() string {
	return e.message
}

// Unwrap returns the error that triggered the referral, if any.
func (e *ReferralError) Unwrap() error {
	return e.cause
}

// Referrals returns every referral URL, including skipped ones.
func (e *ReferralError) Referrals() []string {
	out := make([]string, len(e.referrals))
	copy(out, e.referrals)
	return out
}

// ReferralInfo returns the referral URL currently being processed,
// or nil when the referrals are exhausted.
func (e *ReferralError) ReferralInfo() interface{} {
	if e.index >= len(e.referrals) {
		return nil
	}
	return e.referrals[e.index]
}

// SkipReferral discards the current referral and moves to the next one.
// Returns true while more referrals remain to be processed.
func (e *ReferralError) SkipReferral() bool {
	if e.index < len(e.referrals) {
		e.index++
		e.retries = 0
	}
	return e.index < len(e.referrals)
}

// RetryReferral keeps the cursor on the current referral and counts one
// more attempt at it.
func (e *ReferralError) RetryReferral() {
	if e.index < len(e.referrals) {
		e.retries++
	}
}

// Retries returns how many times the current referral has been retried.
func (e *ReferralError) Retries() int {
	return e.retries
}

// ReferralContext follows the current referral with the configured resolver.
func (e *ReferralError) ReferralContext(env map[string]interface{}) (interface{}, error) {
	if e.index >= len(e.referrals) {
		return nil, Wrap(ErrReferralsExhausted, KindOperationError, "cannot follow referral")
	}
	if e.resolver == nil {
		return nil, Wrap(ErrNoReferralResolver, KindUnwillingToPerform, "cannot follow referral")
	}
	return e.resolver(e.referrals[e.index], env)
}

// RemainingDn returns the part of the target name that was not resolved.
func (e *ReferralError) RemainingDn() *Dn {
	return e.remainingDn
}

// ResolvedDn returns the part of the target name that was resolved.
func (e *ReferralError) ResolvedDn() *Dn {
	return e.resolvedDn
}

// ResolvedObject returns the object bound to the resolved name, if any.
func (e *ReferralError) ResolvedObject() interface{} {
	return e.resolvedObject
}

// PartialResultError reports that an operation returned an incomplete result set.
type PartialResultError struct {
	message string
	resolution
}

// NewPartialResultError creates a partial result error.
func NewPartialResultError(message string, opts ...ResolutionOption) *PartialResultError {
	return &PartialResultError{
		message:    message,
		resolution: newResolution(opts),
	}
}

// Error implements the error interface.
func (e *PartialResultError) Error() string {
	return formatError(KindPartialResult, e.message, e.cause)
}

// Kind returns KindPartialResult.
func (e *PartialResultError) Kind() ErrorKind {
	return KindPartialResult
}

// Message returns the error message.
func (e *PartialResultError) Message() string {
	return e.message
}

// Unwrap returns the error that triggered the partial result, if any.
func (e *PartialResultError) Unwrap() error {
	return e.cause
}

// RemainingDn returns the part of the target name that was not resolved.
func (e *PartialResultError) RemainingDn() *Dn {
	return e.remainingDn
}

// ResolvedDn returns the part of the target name that was resolved.
func (e *PartialResultError) ResolvedDn() *Dn {
	return e.resolvedDn
}

// ResolvedObject returns the object bound to the resolved name, if any.
func (e *PartialResultError) ResolvedObject() interface{} {
	return e.resolvedObject
}
