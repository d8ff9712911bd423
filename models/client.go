package models

import "encoding/json"

// Client represents a proxy account attached to an inbound. The panel returns
// the same shape both for configuration entries (string id) and for traffic
// records (numeric id, inboundId back-reference), so one type covers both.
type Client struct {
	ID         ID     `json:"id"`
	InboundID  int    `json:"inboundId,omitempty"`
	Enable     bool   `json:"enable"`
	Email      string `json:"email"`
	Flow       string `json:"flow"`
	LimitIP    int    `json:"limitIp"`
	TotalGB    int64  `json:"totalGB"`
	Up         int64  `json:"up"`
	Down       int64  `json:"down"`
	Total      int64  `json:"total"`
	ExpiryTime int64  `json:"expiryTime"`
	TgID       ID     `json:"tgId"`
	SubID      string `json:"subId"`
	Reset      int    `json:"reset"`
}

// UnmarshalJSON implements json.Unmarshaler. Clients default to enabled when
// the panel omits the flag.
func (c *Client) UnmarshalJSON(b []byte) error {
	type alias Client
	aux := struct {
		Enable *bool `json:"enable"`
		*alias
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	c.Enable = aux.Enable == nil || *aux.Enable
	return nil
}

// HasExpired reports whether the account is past its expiry time. now is an
// epoch in milliseconds; a zero ExpiryTime never expires.
func (c *Client) HasExpired(now int64) bool {
	return c.ExpiryTime > 0 && c.ExpiryTime <= now
}

// UsedTraffic returns the combined upload and download counters in bytes
func (c *Client) UsedTraffic() int64 {
	return c.Up + c.Down
}

// Depleted reports whether the account has consumed its traffic quota. A zero
// quota means unlimited.
func (c *Client) Depleted() bool {
	return c.Total > 0 && c.UsedTraffic() >= c.Total
}
