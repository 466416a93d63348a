package bridge

import (
	"fmt"

	goldap "github.com/go-ldap/ldap/v3"

	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/codec.go -pkg mocks . ControlCodec

// ControlCodec converts single controls between the protocol library and
// the naming API. codec.LDAPCodec is the production implementation.
type ControlCodec interface {
	// ToGeneric converts a protocol control into its naming form.
	ToGeneric(control goldap.Control) (naming.Control, error)

	// FromGeneric converts a naming control back into a protocol control.
	FromGeneric(control naming.Control) (goldap.Control, error)
}

// WrapControl converts one protocol control with codec.
func WrapControl(codec ControlCodec, control goldap.Control) (naming.Control, error) {
	return codec.ToGeneric(control)
}

// UnwrapControl converts one naming control with codec.
func UnwrapControl(codec ControlCodec, control naming.Control) (goldap.Control, error) {
	return codec.FromGeneric(control)
}

// WrapControls converts protocol controls to naming controls, one by one.
// The result has the same length and order as controls. A nil slice yields
// nil; an empty slice yields an empty slice. The first codec failure aborts
// the conversion.
func WrapControls(codec ControlCodec, controls []goldap.Control) ([]naming.Control, error) {
	if controls == nil {
		return nil, nil
	}

	out := make([]naming.Control, len(controls))
	for i, control := range controls {
		converted, err := codec.ToGeneric(control)
		if err != nil {
			return nil, fmt.Errorf("wrap control %d (%s): %w", i, controlType(control), err)
		}
		out[i] = converted
	}
	return out, nil
}

// UnwrapControls converts naming controls to protocol controls, one by one,
// with the same nil, length and order rules as WrapControls.
func UnwrapControls(codec ControlCodec, controls []naming.Control) ([]goldap.Control, error) {
	if controls == nil {
		return nil, nil
	}

	out := make([]goldap.Control, len(controls))
	for i, control := range controls {
		converted, err := codec.FromGeneric(control)
		if err != nil {
			return nil, fmt.Errorf("unwrap control %d (%s): %w", i, control.ID, err)
		}
		out[i] = converted
	}
	return out, nil
}

func controlType(control goldap.Control) string {
	if control == nil {
		return "<nil>"
	}
	return control.GetControlType()
}
