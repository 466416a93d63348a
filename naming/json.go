package naming

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of a NamingError.
//
// The root cause is never serialized.
type ErrorResponse struct {
	// Kind is the kind identifying the type of failure.
	Kind string `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context holds the attached metadata, omitted when empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For NamingError instances, extracts kind, message, classification, and context.
// For other errors, uses KindGeneric, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var namingErr NamingError
	if As(err, &namingErr) {
		message = namingErr.Message()
		context = namingErr.Context()
	}

	return &ErrorResponse{
		Kind:           string(GetKind(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for namingError.
//
// Example:
//
//	err := naming.New(naming.KindNameNotFound, "entry not found")
//	data, _ := json.Marshal(err)
//	// {"kind":"NAME_NOT_FOUND","message":"entry not found","classification":"PERMANENT"}
func (e *namingError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Kind:           string(e.kind),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, &namingError{
			kind:           KindGeneric,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
