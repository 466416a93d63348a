// Package codec converts protocol controls between the go-ldap control
// types and their encoded form in the naming API.
//
// A control is encoded as the BER sequence defined by RFC 4511 section 4.1.11:
//
//	Control ::= SEQUENCE {
//	     controlType             LDAPOID,
//	     criticality             BOOLEAN DEFAULT FALSE,
//	     controlValue            OCTET STRING OPTIONAL }
//
// Decoding goes through goldap.DecodeControl, so well-known control types
// (paging, password policy, manage DSA IT, ...) come back as their typed
// go-ldap structs and unknown types as *goldap.ControlString.
package codec

import (
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
	goldap "github.com/go-ldap/ldap/v3"

	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// LDAPCodec encodes and decodes controls with go-ldap and asn1-ber.
// The zero value is ready to use and safe for concurrent use.
type LDAPCodec struct{}

// New returns an LDAPCodec.
func New() *LDAPCodec {
	return &LDAPCodec{}
}

// ToGeneric encodes a go-ldap control into its naming form.
func (c *LDAPCodec) ToGeneric(control goldap.Control) (naming.Control, error) {
	if control == nil {
		return naming.Control{}, fmt.Errorf("encode control: nil control")
	}

	// Round trip through the wire form so every child carries decoded values.
	packet, err := ber.DecodePacketErr(control.Encode().Bytes())
	if err != nil {
		return naming.Control{}, fmt.Errorf("encode control %s: %w", control.GetControlType(), err)
	}
	if len(packet.Children) == 0 {
		return naming.Control{}, fmt.Errorf("encode control %s: empty control sequence", control.GetControlType())
	}

	out := naming.Control{ID: control.GetControlType()}
	for _, child := range packet.Children[1:] {
		switch child.Tag {
		case ber.TagBoolean:
			if critical, ok := child.Value.(bool); ok {
				out.Critical = critical
			}
		case ber.TagOctetString:
			out.Value = octets(child)
		}
	}
	return out, nil
}

// FromGeneric decodes a naming control into the matching go-ldap control.
func (c *LDAPCodec) FromGeneric(control naming.Control) (goldap.Control, error) {
	if control.ID == "" {
		return nil, fmt.Errorf("decode control: missing control type")
	}

	seq := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "Control")
	seq.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, control.ID, "Control Type"))
	if control.Critical {
		seq.AppendChild(ber.NewBoolean(ber.ClassUniversal, ber.TypePrimitive, ber.TagBoolean, true, "Criticality"))
	}
	if control.Value != nil {
		seq.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, string(control.Value), "Control Value"))
	}

	packet, err := ber.DecodePacketErr(seq.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decode control %s: %w", control.ID, err)
	}

	decoded, err := goldap.DecodeControl(packet)
	if err != nil {
		return nil, fmt.Errorf("decode control %s: %w", control.ID, err)
	}
	if decoded == nil {
		return nil, fmt.Errorf("decode control %s: no control decoded", control.ID)
	}
	return decoded, nil
}

func octets(p *ber.Packet) []byte {
	if s, ok := p.Value.(string); ok {
		return []byte(s)
	}
	if p.Data != nil {
		return p.Data.Bytes()
	}
	return nil
}
