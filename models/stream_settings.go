package models

import "encoding/json"

// StreamSettings represents the transport-layer configuration of an inbound.
// The transport sub-configs vary between panel versions and protocols, so
// they are kept as raw JSON rather than fully typed.
type StreamSettings struct {
	Network       string            `json:"network"`
	Security      string            `json:"security"`
	ExternalProxy []json.RawMessage `json:"externalProxy,omitempty"`

	TCPSettings  json.RawMessage `json:"tcpSettings,omitempty"`
	KCPSettings  json.RawMessage `json:"kcpSettings,omitempty"`
	WSSettings   json.RawMessage `json:"wsSettings,omitempty"`
	GRPCSettings json.RawMessage `json:"grpcSettings,omitempty"`
	HTTPSettings json.RawMessage `json:"httpSettings,omitempty"`
	QUICSettings json.RawMessage `json:"quicSettings,omitempty"`

	TLSSettings     json.RawMessage `json:"tlsSettings,omitempty"`
	RealitySettings json.RawMessage `json:"realitySettings,omitempty"`
	XTLSSettings    json.RawMessage `json:"xtlsSettings,omitempty"`

	// Raw preserves the wire text when it does not parse as the structured
	// shape above; it is re-emitted unchanged on marshal.
	Raw string `json:"-"`
}

// MarshalJSON implements json.Marshaler, producing the JSON-string wire form
func (s StreamSettings) MarshalJSON() ([]byte, error) {
	type wire StreamSettings
	return marshalEmbedded(wire(s), s.Raw)
}

// UnmarshalJSON implements json.Unmarshaler, accepting both the JSON-string
// wire form and a plain object
func (s *StreamSettings) UnmarshalJSON(b []byte) error {
	type wire StreamSettings
	var w wire
	raw, err := unmarshalEmbedded(b, &w)
	if err != nil {
		return err
	}
	*s = StreamSettings(w)
	s.Raw = raw
	return nil
}
