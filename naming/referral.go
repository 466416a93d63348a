package naming

// Environment holds the properties used to create a naming context,
// such as credentials or connection settings for a referred server.
type Environment map[string]interface{}

// Context is a naming context obtained by following a referral.
type Context interface {
	// Environment returns the properties the context was created with.
	Environment() Environment

	// Close releases the resources held by the context.
	Close() error
}

// Resolution exposes how far name resolution progressed before an
// operation stopped.
type Resolution interface {
	// RemainingName returns the part of the name that was not resolved.
	// Returns a nil Name if there is no remaining name.
	RemainingName() (*Name, error)

	// ResolvedName returns the part of the name that was resolved.
	// Returns a nil Name if there is no resolved name.
	ResolvedName() (*Name, error)

	// ResolvedObject returns the object the resolved name is bound to, if any.
	ResolvedObject() interface{}
}

// PartialResultError signals that an operation returned an incomplete
// result set.
type PartialResultError interface {
	NamingError
	Resolution
}

// ReferralError signals that an operation must be continued at another
// location. It carries a cursor over the referrals the server returned.
type ReferralError interface {
	NamingError
	Resolution

	// ReferralInfo returns the referral currently being processed.
	ReferralInfo() interface{}

	// SkipReferral discards the current referral and moves to the next one.
	// Returns false when no referral is left to process.
	SkipReferral() bool

	// RetryReferral marks the current referral to be attempted again by the
	// next call to ReferralContext.
	RetryReferral()

	// ReferralContext returns a context for continuing the operation at the
	// current referral. env may be nil to reuse the original environment.
	ReferralContext(env Environment) (Context, error)
}
