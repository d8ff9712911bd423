package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID is an identifier whose wire form varies by endpoint and panel version:
// client configuration records carry a UUID or password string, traffic
// records carry a numeric row id, and tgId arrives as either. It accepts both
// JSON forms and marshals back in the form it was decoded from.
type ID struct {
	value   string
	numeric bool
}

// StringID creates an ID that marshals as a JSON string
func StringID(s string) ID {
	return ID{value: s}
}

// IntID creates an ID that marshals as a JSON number
func IntID(n int64) ID {
	return ID{value: fmt.Sprintf("%d", n), numeric: true}
}

// NewClientID generates a random UUID suitable for a new client identifier
func NewClientID() ID {
	return StringID(uuid.NewString())
}

// String returns the identifier in text form
func (id ID) String() string {
	return id.value
}

// IsZero reports whether the identifier is unset
func (id ID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier is neither string nor number: %s", string(b))
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}
