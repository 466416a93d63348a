package ldap

import (
	"strings"

	"github.com/google/uuid"
)

// CompareUUID orders two entryUUID values.
//
// A nil value sorts before any non-nil value. Values that parse as UUIDs
// are normalized to their lower-case canonical form, so case and the
// braces/urn variants do not matter. Other values are kept as written.
// The resulting strings are compared lexically.
func CompareUUID(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(normalizeUUID(*a), normalizeUUID(*b))
}

func normalizeUUID(s string) string {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return parsed.String()
}
