package models

import "encoding/json"

// Protocol represents the protocol type of an inbound listener
type Protocol string

// Protocol constants for the inbound protocols the panel supports
const (
	VMESS        Protocol = "vmess"
	VLESS        Protocol = "vless"
	Trojan       Protocol = "trojan"
	Shadowsocks  Protocol = "shadowsocks"
	DokodemoDoor Protocol = "dokodemo-door"
	Socks        Protocol = "socks"
	HTTP         Protocol = "http"
	WireGuard    Protocol = "wireguard"
	Mixed        Protocol = "mixed"
	Tunnel       Protocol = "tunnel"
)

// Inbound represents one listener configuration on the panel. The nested
// Settings, StreamSettings and Sniffing fields travel as JSON-encoded strings
// on the wire; their types transparently handle the double encoding.
// ClientStats is populated only on reads and ignored by the panel on writes.
type Inbound struct {
	ID          int      `json:"id,omitempty"`
	Up          int64    `json:"up"`
	Down        int64    `json:"down"`
	Total       int64    `json:"total"`
	Remark      string   `json:"remark"`
	Enable      bool     `json:"enable"`
	ExpiryTime  int64    `json:"expiryTime"`
	ClientStats []Client `json:"clientStats,omitempty"`

	Listen         string          `json:"listen"`
	Port           int             `json:"port"`
	Protocol       Protocol        `json:"protocol"`
	Settings       Settings        `json:"settings"`
	StreamSettings *StreamSettings `json:"streamSettings,omitempty"`
	Tag            string          `json:"tag,omitempty"`
	Sniffing       Sniffing        `json:"sniffing"`
}

// UnmarshalJSON implements json.Unmarshaler. Inbounds default to enabled when
// the panel omits the flag.
func (i *Inbound) UnmarshalJSON(b []byte) error {
	type alias Inbound
	aux := struct {
		Enable *bool `json:"enable"`
		*alias
	}{alias: (*alias)(i)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	i.Enable = aux.Enable == nil || *aux.Enable
	return nil
}
