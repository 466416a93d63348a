package bridge

import (
	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// ToName converts a domain Dn into a naming.Name with the same canonical
// string form. A nil dn is the absent name: ToName returns nil, nil.
func ToName(dn *ldap.Dn) (*naming.Name, error) {
	if dn == nil {
		return nil, nil
	}

	s := dn.String()
	name, err := naming.ParseName(s)
	if err != nil {
		return nil, naming.Wrapf(err, naming.KindInvalidName, "cannot convert dn %q to a name", s)
	}
	return name, nil
}

// ToDn converts a naming.Name into a domain Dn with the same canonical
// string form. A nil name is the absent name: ToDn returns nil, nil.
func ToDn(name *naming.Name) (*ldap.Dn, error) {
	if name == nil {
		return nil, nil
	}
	if name.IsEmpty() {
		return ldap.NewDn(), nil
	}

	s := name.String()
	dn, err := ldap.ParseDn(s)
	if err != nil {
		return nil, naming.Wrapf(err, naming.KindInvalidName, "cannot convert name %q to a dn", s)
	}
	return dn, nil
}
