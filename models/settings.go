package models

import "encoding/json"

// Settings represents the protocol-specific part of an inbound configuration:
// the client list plus protocol options. The panel transmits it as a
// JSON-encoded string inside the inbound object.
type Settings struct {
	Clients    []Client          `json:"clients"`
	Decryption string            `json:"decryption"`
	Fallbacks  []json.RawMessage `json:"fallbacks"`

	// Raw preserves the wire text when it does not parse as the structured
	// shape above; it is re-emitted unchanged on marshal.
	Raw string `json:"-"`
}

// MarshalJSON implements json.Marshaler, producing the JSON-string wire form
func (s Settings) MarshalJSON() ([]byte, error) {
	type wire Settings
	w := wire(s)
	if w.Clients == nil {
		w.Clients = []Client{}
	}
	if w.Fallbacks == nil {
		w.Fallbacks = []json.RawMessage{}
	}
	return marshalEmbedded(w, s.Raw)
}

// UnmarshalJSON implements json.Unmarshaler, accepting both the JSON-string
// wire form and a plain object
func (s *Settings) UnmarshalJSON(b []byte) error {
	type wire Settings
	var w wire
	raw, err := unmarshalEmbedded(b, &w)
	if err != nil {
		return err
	}
	*s = Settings(w)
	s.Raw = raw
	return nil
}
