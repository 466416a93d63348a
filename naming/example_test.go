package naming_test

import (
	"encoding/json"
	"fmt"

	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

func ExampleNew() {
	err := naming.New(naming.KindNameNotFound, "entry not found")
	fmt.Println(err.Error())
	// Output: [NAME_NOT_FOUND] entry not found
}

func ExampleWrap() {
	cause := fmt.Errorf("connection reset by peer")

	err := naming.Wrap(cause, naming.KindCommunication, "search failed")

	fmt.Println(naming.GetKind(err))
	fmt.Println(naming.IsRetryable(err))
	// Output:
	// COMMUNICATION
	// true
}

func ExampleWithContext() {
	err := naming.New(naming.KindNoPermission, "insufficient access rights")
	err = naming.WithContext(err, "operation", "modify")
	err = naming.WithContext(err, "dn", "ou=people,dc=example,dc=com")

	ctx := err.Context()
	fmt.Printf("Operation: %s, DN: %s\n", ctx["operation"], ctx["dn"])
	// Output: Operation: modify, DN: ou=people,dc=example,dc=com
}

func ExampleToJSON() {
	err := naming.New(naming.KindTimeLimitExceeded, "search took too long")

	data, _ := json.Marshal(naming.ToJSON(err))
	fmt.Println(string(data))
	// Output: {"kind":"TIME_LIMIT_EXCEEDED","message":"search took too long","classification":"RETRYABLE"}
}

func ExampleParseName() {
	name, err := naming.ParseName("cn=test,ou=people,dc=example,dc=com")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(name.Size())
	fmt.Println(name.Get(0))
	fmt.Println(name)
	// Output:
	// 4
	// dc=com
	// cn=test,ou=people,dc=example,dc=com
}

func ExampleControl_String() {
	c := naming.Control{ID: "1.2.840.113556.1.4.319", Critical: true, Value: []byte{0x30, 0x00}}
	fmt.Println(c)
	// Output: Control(1.2.840.113556.1.4.319, critical=true, 2 bytes)
}
