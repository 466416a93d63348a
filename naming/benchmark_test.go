package naming_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = naming.New(naming.KindNameNotFound, "entry not found")
	}
}

func BenchmarkWrap(b *testing.B) {
	cause := stderrors.New("no such object")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = naming.Wrap(cause, naming.KindNameNotFound, "lookup failed")
	}
}

func BenchmarkWithContext(b *testing.B) {
	err := naming.New(naming.KindNoPermission, "denied")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = naming.WithContext(err, "dn", "cn=test,dc=example,dc=com")
	}
}

func BenchmarkParseName(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = naming.ParseName(`cn=Smith\, John+uid=jsmith,ou=people,dc=example,dc=com`)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := naming.WithContext(naming.New(naming.KindNameNotFound, "missing"), "dn", "cn=test")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}
