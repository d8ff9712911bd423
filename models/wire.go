// Package models defines the wire-level data structures exchanged with the
// panel API: inbound listener configurations, client accounts and the nested
// settings objects the panel embeds as JSON-encoded strings.
package models

import "encoding/json"

// marshalEmbedded encodes v and wraps the result in a JSON string, the form
// the panel uses for nested configuration fields. When raw is non-empty the
// original wire text is re-emitted verbatim instead.
func marshalEmbedded(v interface{}, raw string) ([]byte, error) {
	if raw != "" {
		return json.Marshal(raw)
	}

	inner, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

// unmarshalEmbedded decodes a nested configuration field that arrives either
// as a JSON string wrapping an object or as a plain object. When the embedded
// payload does not parse into v, the wire text is returned so the caller can
// keep it instead of failing the whole response; panel versions disagree on
// these shapes.
func unmarshalEmbedded(b []byte, v interface{}) (raw string, err error) {
	inner := b

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			return "", nil
		}
		inner = []byte(s)
	}

	if err := json.Unmarshal(inner, v); err != nil {
		return string(inner), nil
	}
	return "", nil
}
