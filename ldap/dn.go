package ldap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	goldap "github.com/go-ldap/ldap/v3"
)

// Ava is a single attribute type and value assertion within an Rdn.
type Ava struct {
	Type  string
	Value string
}

// String returns the RFC 4514 string form of the assertion.
func (a Ava) String() string {
	return a.Type + "=" + escapeValue(a.Value)
}

// Rdn is a relative distinguished name: one or more assertions.
type Rdn struct {
	Avas []Ava
}

// String returns the RFC 4514 string form of the Rdn, assertions joined by '+'.
func (r Rdn) String() string {
	parts := make([]string, len(r.Avas))
	for i, ava := range r.Avas {
		parts[i] = ava.String()
	}
	return strings.Join(parts, "+")
}

// Dn is a distinguished name: an ordered sequence of Rdns, most specific first.
// A Dn is immutable once built.
type Dn struct {
	rdns []Rdn
}

// ParseDn parses the RFC 4514 string form of a distinguished name.
// The empty string yields the empty Dn (the root).
// Returns an *Error of kind KindInvalidDn if s is malformed.
func ParseDn(s string) (*Dn, error) {
	parsed, err := goldap.ParseDN(s)
	if err != nil {
		return nil, Wrap(err, KindInvalidDn, fmt.Sprintf("invalid distinguished name %q", s))
	}

	rdns := make([]Rdn, 0, len(parsed.RDNs))
	for _, rdn := range parsed.RDNs {
		avas := make([]Ava, 0, len(rdn.Attributes))
		for _, attr := range rdn.Attributes {
			avas = append(avas, Ava{Type: attr.Type, Value: attr.Value})
		}
		rdns = append(rdns, Rdn{Avas: avas})
	}

	return &Dn{rdns: rdns}, nil
}

// MustParseDn is like ParseDn but panics if s cannot be parsed.
// It simplifies initialization of package-level names and tests.
func MustParseDn(s string) *Dn {
	dn, err := ParseDn(s)
	if err != nil {
		panic(err)
	}
	return dn
}

// NewDn builds a Dn from Rdns given most specific first.
func NewDn(rdns ...Rdn) *Dn {
	out := make([]Rdn, len(rdns))
	for i, rdn := range rdns {
		avas := make([]Ava, len(rdn.Avas))
		copy(avas, rdn.Avas)
		out[i] = Rdn{Avas: avas}
	}
	return &Dn{rdns: out}
}

// String returns the canonical RFC 4514 string form.
// Formatting is stable and preserves Rdn and assertion order.
func (d *Dn) String() string {
	if d == nil {
		return ""
	}
	parts := make([]string, len(d.rdns))
	for i, rdn := range d.rdns {
		parts[i] = rdn.String()
	}
	return strings.Join(parts, ",")
}

// Size returns the number of Rdns.
func (d *Dn) Size() int {
	if d == nil {
		return 0
	}
	return len(d.rdns)
}

// IsEmpty reports whether d is the empty (root) Dn.
func (d *Dn) IsEmpty() bool {
	return d.Size() == 0
}

// RDNs returns a copy of the Rdns, most specific first.
func (d *Dn) RDNs() []Rdn {
	if d == nil {
		return nil
	}
	return NewDn(d.rdns...).rdns
}

// Equal reports whether two Dns name the same entry. Attribute types are
// compared case-insensitively, values exactly.
func (d *Dn) Equal(other *Dn) bool {
	if d.Size() != other.Size() {
		return false
	}
	if d.Size() == 0 {
		return true
	}
	for i := range d.rdns {
		a, b := d.rdns[i].Avas, other.rdns[i].Avas
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !strings.EqualFold(a[j].Type, b[j].Type) || a[j].Value != b[j].Value {
				return false
			}
		}
	}
	return true
}

// escapeValue escapes an attribute value per RFC 4514 section 2.4.
// NUL and bytes that are not part of valid UTF-8 are written as \XX pairs.
func escapeValue(v string) string {
	if v == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if r == 0 || (r == utf8.RuneError && size == 1) {
			writeHexPair(&b, v[i])
			i += size
			continue
		}

		c := v[i]
		switch {
		case c == '"' || c == '+' || c == ',' || c == ';' || c == '<' || c == '>' || c == '\\':
			b.WriteByte('\\')
		case c == '#' && i == 0:
			b.WriteByte('\\')
		case c == ' ' && (i == 0 || i == len(v)-1):
			b.WriteByte('\\')
		}
		b.WriteString(v[i : i+size])
		i += size
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func writeHexPair(b *strings.Builder, c byte) {
	b.WriteByte('\\')
	b.WriteByte(hexDigits[c>>4])
	b.WriteByte(hexDigits[c&0x0f])
}
