package ldap

import (
	"errors"

	ber "github.com/go-asn1-ber/asn1-ber"
	goldap "github.com/go-ldap/ldap/v3"
)

// tagReferral is the context-specific tag of the referral field in an LDAPResult.
const tagReferral = 3

// resultCodeKinds maps LDAP result codes to domain kinds.
// Codes missing from the map classify as KindOther.
var resultCodeKinds = map[uint16]ErrorKind{
	goldap.LDAPResultOperationsError:              KindOperationError,
	goldap.LDAPResultProtocolError:                KindProtocolError,
	goldap.LDAPResultTimeLimitExceeded:            KindTimeLimitExceeded,
	goldap.LDAPResultAuthMethodNotSupported:       KindAuthenticationNotSupported,
	goldap.LDAPResultStrongAuthRequired:           KindAuthenticationNotSupported,
	goldap.LDAPResultConfidentialityRequired:      KindAuthenticationNotSupported,
	goldap.LDAPResultReferral:                     KindReferral,
	goldap.LDAPResultUnavailableCriticalExtension: KindServiceUnavailable,
	goldap.LDAPResultNoSuchAttribute:              KindNoSuchAttribute,
	goldap.LDAPResultUndefinedAttributeType:       KindInvalidAttributeType,
	goldap.LDAPResultConstraintViolation:          KindInvalidAttributeValue,
	goldap.LDAPResultAttributeOrValueExists:       KindAttributeInUse,
	goldap.LDAPResultInvalidAttributeSyntax:       KindInvalidAttributeValue,
	goldap.LDAPResultNoSuchObject:                 KindNoSuchObject,
	goldap.LDAPResultAliasProblem:                 KindAlias,
	goldap.LDAPResultInvalidDNSyntax:              KindInvalidDn,
	goldap.LDAPResultAliasDereferencingProblem:    KindAliasDereferencing,
	goldap.LDAPResultInappropriateAuthentication:  KindAuthentication,
	goldap.LDAPResultInvalidCredentials:           KindAuthentication,
	goldap.LDAPResultInsufficientAccessRights:     KindNoPermission,
	goldap.LDAPResultBusy:                         KindServiceUnavailable,
	goldap.LDAPResultUnavailable:                  KindServiceUnavailable,
	goldap.LDAPResultUnwillingToPerform:           KindUnwillingToPerform,
	goldap.LDAPResultLoopDetect:                   KindLoopDetected,
	goldap.LDAPResultNamingViolation:              KindInvalidDn,
	goldap.LDAPResultObjectClassViolation:         KindSchemaViolation,
	goldap.LDAPResultNotAllowedOnNonLeaf:          KindContextNotEmpty,
	goldap.LDAPResultNotAllowedOnRDN:              KindSchemaViolation,
	goldap.LDAPResultEntryAlreadyExists:           KindEntryAlreadyExists,
	goldap.LDAPResultObjectClassModsProhibited:    KindSchemaViolation,
	goldap.LDAPResultAffectsMultipleDSAs:          KindAffectMultipleDsa,
	goldap.LDAPResultOther:                        KindOther,
	goldap.ErrorNetwork:                           KindServiceUnavailable,
	goldap.ErrorFilterCompile:                     KindInvalidSearchFilter,
}

// kindResultCodes maps each kind to the result code reported for it.
// KindPartialResult has no LDAPv3 result code.
var kindResultCodes = map[ErrorKind]uint16{
	KindAffectMultipleDsa:          goldap.LDAPResultAffectsMultipleDSAs,
	KindAliasDereferencing:         goldap.LDAPResultAliasDereferencingProblem,
	KindAlias:                      goldap.LDAPResultAliasProblem,
	KindAttributeInUse:             goldap.LDAPResultAttributeOrValueExists,
	KindAuthentication:             goldap.LDAPResultInvalidCredentials,
	KindAuthenticationNotSupported: goldap.LDAPResultAuthMethodNotSupported,
	KindContextNotEmpty:            goldap.LDAPResultNotAllowedOnNonLeaf,
	KindEntryAlreadyExists:         goldap.LDAPResultEntryAlreadyExists,
	KindInvalidAttributeType:       goldap.LDAPResultUndefinedAttributeType,
	KindInvalidAttributeValue:      goldap.LDAPResultInvalidAttributeSyntax,
	KindInvalidDn:                  goldap.LDAPResultInvalidDNSyntax,
	KindInvalidSearchFilter:        goldap.ErrorFilterCompile,
	KindLoopDetected:               goldap.LDAPResultLoopDetect,
	KindNoPermission:               goldap.LDAPResultInsufficientAccessRights,
	KindNoSuchAttribute:            goldap.LDAPResultNoSuchAttribute,
	KindNoSuchObject:               goldap.LDAPResultNoSuchObject,
	KindOperationError:             goldap.LDAPResultOperationsError,
	KindOther:                      goldap.LDAPResultOther,
	KindProtocolError:              goldap.LDAPResultProtocolError,
	KindReferral:                   goldap.LDAPResultReferral,
	KindSchemaViolation:            goldap.LDAPResultObjectClassViolation,
	KindServiceUnavailable:         goldap.LDAPResultUnavailable,
	KindTimeLimitExceeded:          goldap.LDAPResultTimeLimitExceeded,
	KindUnwillingToPerform:         goldap.LDAPResultUnwillingToPerform,
}

// KindForResultCode returns the domain kind for an LDAP result code.
func KindForResultCode(code uint16) ErrorKind {
	if kind, ok := resultCodeKinds[code]; ok {
		return kind
	}
	return KindOther
}

// ResultCodeForKind returns the LDAP result code reported for a kind.
// Returns false for kinds without a result code.
func ResultCodeForKind(kind ErrorKind) (uint16, bool) {
	code, ok := kindResultCodes[kind]
	return code, ok
}

// FromResultError lifts an error returned by the go-ldap client into the
// domain model, classifying it by result code. The matched DN is kept and,
// for referrals, the referral URLs are read from the response packet.
//
// Errors without a *goldap.Error in their chain are returned unchanged.
// Returns nil if err is nil.
func FromResultError(err error) error {
	if err == nil {
		return nil
	}

	var resultErr *goldap.Error
	if !errors.As(err, &resultErr) {
		return err
	}

	message := goldap.LDAPResultCodeMap[resultErr.ResultCode]
	if resultErr.Err != nil {
		message = resultErr.Err.Error()
	}

	// A malformed matched DN from the server is dropped rather than failing the lift.
	matched, parseErr := ParseDn(resultErr.MatchedDN)
	if parseErr != nil || resultErr.MatchedDN == "" {
		matched = nil
	}

	kind := KindForResultCode(resultErr.ResultCode)
	if kind == KindReferral {
		return NewReferralError(message, referralsFromPacket(resultErr.Packet),
			WithResolvedDn(matched),
			WithCause(err),
		)
	}

	e := Wrap(err, kind, message)
	e.resultCode = resultErr.ResultCode
	e.matchedDn = matched
	return e
}

// referralsFromPacket extracts the referral URLs of an LDAPMessage whose
// protocol operation is an LDAPResult.
func referralsFromPacket(packet *ber.Packet) []string {
	if packet == nil || len(packet.Children) < 2 {
		return nil
	}

	for _, child := range packet.Children[1].Children {
		if child.ClassType != ber.ClassContext || child.Tag != tagReferral {
			continue
		}
		urls := make([]string, 0, len(child.Children))
		for _, url := range child.Children {
			switch {
			case url.Value != nil:
				if s, ok := url.Value.(string); ok {
					urls = append(urls, s)
				}
			case url.Data != nil:
				urls = append(urls, url.Data.String())
			}
		}
		return urls
	}
	return nil
}
