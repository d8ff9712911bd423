package models

// Sniffing represents the inner-protocol detection configuration of an inbound
type Sniffing struct {
	Enabled      bool     `json:"enabled"`
	DestOverride []string `json:"destOverride"`
	MetadataOnly bool     `json:"metadataOnly"`
	RouteOnly    bool     `json:"routeOnly"`

	// Raw preserves the wire text when it does not parse as the structured
	// shape above; it is re-emitted unchanged on marshal.
	Raw string `json:"-"`
}

// MarshalJSON implements json.Marshaler, producing the JSON-string wire form
func (s Sniffing) MarshalJSON() ([]byte, error) {
	type wire Sniffing
	w := wire(s)
	if w.DestOverride == nil {
		w.DestOverride = []string{}
	}
	return marshalEmbedded(w, s.Raw)
}

// UnmarshalJSON implements json.Unmarshaler, accepting both the JSON-string
// wire form and a plain object
func (s *Sniffing) UnmarshalJSON(b []byte) error {
	type wire Sniffing
	var w wire
	raw, err := unmarshalEmbedded(b, &w)
	if err != nil {
		return err
	}
	*s = Sniffing(w)
	s.Raw = raw
	return nil
}
