package naming

import (
	"strings"
)

// Name is a generic hierarchical directory name.
//
// A Name is an ordered sequence of relative name components kept exactly
// as written, escapes included. Its string form joins the components with
// commas, leftmost (most specific) first, which makes it interchangeable
// with the canonical string form of a distinguished name.
//
// Positional access follows directory order: index 0 is the rightmost
// component, the one closest to the root.
type Name struct {
	rdns []string
}

// ParseName parses the string form of a name.
// The empty string is the empty name. Components are separated by unescaped
// ',' or ';'; each must hold one or more type=value pairs joined by '+'.
// Returns a KindInvalidName error if s is malformed.
func ParseName(s string) (*Name, error) {
	if strings.TrimSpace(s) == "" {
		return &Name{}, nil
	}

	parts, err := splitUnescaped(s, ",;")
	if err != nil {
		return nil, Newf(KindInvalidName, "invalid name %q: %s", s, err.Error())
	}

	rdns := make([]string, 0, len(parts))
	for _, part := range parts {
		rdn := trimComponent(part)
		if err := validateRdn(rdn); err != nil {
			return nil, Newf(KindInvalidName, "invalid name %q: %s", s, err.Error())
		}
		rdns = append(rdns, rdn)
	}

	return &Name{rdns: rdns}, nil
}

// String returns the comma-separated string form of the name.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return strings.Join(n.rdns, ",")
}

// Size returns the number of components in the name.
func (n *Name) Size() int {
	if n == nil {
		return 0
	}
	return len(n.rdns)
}

// IsEmpty reports whether the name has no components.
func (n *Name) IsEmpty() bool {
	return n.Size() == 0
}

// Get returns the component at position i, where 0 is the rightmost component.
// Returns an empty string if i is out of range.
func (n *Name) Get(i int) string {
	if i < 0 || i >= n.Size() {
		return ""
	}
	return n.rdns[len(n.rdns)-1-i]
}

// RDNs returns the components in written order (leftmost first).
// The returned slice is a copy.
func (n *Name) RDNs() []string {
	if n == nil {
		return nil
	}
	out := make([]string, len(n.rdns))
	copy(out, n.rdns)
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (n *Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	n.rdns = parsed.rdns
	return nil
}

type syntaxError string

func (e syntaxError) Error() string { return string(e) }

const (
	errTrailingEscape    = syntaxError("trailing escape character")
	errUnterminatedQuote = syntaxError("unterminated quoted value")
	errEmptyComponent    = syntaxError("empty component")
	errMissingEquals     = syntaxError("component is not a type=value pair")
	errInvalidType       = syntaxError("invalid attribute type")
)

// splitUnescaped splits s on any byte in seps that is neither escaped with
// a backslash nor inside a quoted value. Escapes are kept in the output.
func splitUnescaped(s, seps string) ([]string, error) {
	var parts []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 >= len(s) {
				return nil, errTrailingEscape
			}
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
		case c == '"':
			inQuotes = !inQuotes
			b.WriteByte(c)
		case !inQuotes && strings.IndexByte(seps, c) >= 0:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, errUnterminatedQuote
	}

	return append(parts, b.String()), nil
}

// trimComponent removes insignificant spaces around a component.
// A trailing space preceded by a backslash is part of the value and is kept.
func trimComponent(s string) string {
	s = strings.TrimLeft(s, " ")
	for strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\\ ") {
		s = s[:len(s)-1]
	}
	return s
}

func validateRdn(rdn string) error {
	if rdn == "" {
		return errEmptyComponent
	}

	avas, err := splitUnescaped(rdn, "+")
	if err != nil {
		return err
	}
	for _, ava := range avas {
		eq := strings.IndexByte(ava, '=')
		if eq < 0 {
			return errMissingEquals
		}
		if !validAttributeType(strings.TrimSpace(ava[:eq])) {
			return errInvalidType
		}
	}
	return nil
}

// validAttributeType accepts a descriptor (letter, then letters, digits or
// hyphens) or a numeric OID.
func validAttributeType(t string) bool {
	if t == "" {
		return false
	}

	if t[0] >= '0' && t[0] <= '9' {
		prevDot := true
		for i := 0; i < len(t); i++ {
			switch c := t[i]; {
			case c >= '0' && c <= '9':
				prevDot = false
			case c == '.' && !prevDot:
				prevDot = true
			default:
				return false
			}
		}
		return !prevDot
	}

	for i := 0; i < len(t); i++ {
		c := t[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter && (i == 0 || (c != '-' && (c < '0' || c > '9'))) {
			return false
		}
	}
	return true
}
