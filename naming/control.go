package naming

import "fmt"

// Control is a request or response control in its encoded form.
type Control struct {
	// ID is the object identifier of the control type.
	ID string

	// Critical reports whether the operation must fail if the control is not supported.
	Critical bool

	// Value is the BER-encoded control value, or nil if the control has none.
	Value []byte
}

// String returns a short description of the control.
func (c Control) String() string {
	return fmt.Sprintf("Control(%s, critical=%t, %d bytes)", c.ID, c.Critical, len(c.Value))
}
