package ldap

import (
	"errors"
	"fmt"
)

// Sentinel errors for referral cursor misuse.
var (
	// ErrReferralsExhausted indicates every referral has already been skipped.
	ErrReferralsExhausted = errors.New("no referral left to process")

	// ErrNoReferralResolver indicates a referral cannot be followed because
	// no resolver was configured on the error.
	ErrNoReferralResolver = errors.New("no referral resolver configured")
)

// KindedError is implemented by every error of the domain model.
type KindedError interface {
	error

	// Kind returns the failure kind.
	Kind() ErrorKind

	// Message returns the human-readable message without the kind prefix.
	Message() string
}

// Error is a domain error of any kind that carries no embedded names.
type Error struct {
	kind       ErrorKind
	message    string
	resultCode uint16
	matchedDn  *Dn
	cause      error
}

// New creates a domain error of the given kind.
// The result code defaults to the primary LDAP result code of the kind.
func New(kind ErrorKind, message string) *Error {
	code, _ := ResultCodeForKind(kind)
	return &Error{
		kind:       kind,
		message:    message,
		resultCode: code,
	}
}

// Newf creates a domain error with a formatted message.
func Newf(kind ErrorKind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates a domain error of the given kind caused by err.
// Returns nil if err is nil.
func Wrap(err error, kind ErrorKind, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(kind, message)
	e.cause = err
	return e
}

// Error implements the error interface.
// Format: "Kind: message" or "Kind: message: cause".
func (e *Error) Error() string {
	return formatError(e.kind, e.message, e.cause)
}

// Kind returns the failure kind.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Message returns the error message.
func (e *Error) Message() string {
	return e.message
}

// ResultCode returns the LDAP result code reported for this error.
func (e *Error) ResultCode() uint16 {
	return e.resultCode
}

// MatchedDn returns the deepest entry the server matched, or nil if unknown.
func (e *Error) MatchedDn() *Dn {
	return e.matchedDn
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

func formatError(kind ErrorKind, message string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", kind, message, cause)
	}
	return fmt.Sprintf("%s: %s", kind, message)
}
