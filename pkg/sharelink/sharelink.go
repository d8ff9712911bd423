// Package sharelink builds connection links for panel clients: vless:// URIs
// from an inbound configuration, subscription URLs and QR codes.
package sharelink

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"xui-panel-client/models"
)

// realityOptions is the subset of a reality transport config that ends up in
// a share link
type realityOptions struct {
	ServerNames []string `json:"serverNames"`
	ShortIDs    []string `json:"shortIds"`
	Settings    struct {
		PublicKey   string `json:"publicKey"`
		Fingerprint string `json:"fingerprint"`
	} `json:"settings"`
}

// Vless builds a vless:// connection URI for a client of the given inbound.
// address is the host the proxy is reachable at, which is usually not the
// panel URL.
func Vless(client models.Client, inbound models.Inbound, address string) (string, error) {
	if inbound.Protocol != models.VLESS {
		return "", fmt.Errorf("cannot build vless link for %s inbound", inbound.Protocol)
	}
	if client.ID.IsZero() {
		return "", fmt.Errorf("client %s has no identifier", client.Email)
	}

	query := url.Values{}
	query.Set("type", "tcp")
	query.Set("security", "none")

	if ss := inbound.StreamSettings; ss != nil {
		if ss.Network != "" {
			query.Set("type", ss.Network)
		}
		if ss.Security != "" {
			query.Set("security", ss.Security)
		}
		if ss.Security == "reality" && len(ss.RealitySettings) > 0 {
			var reality realityOptions
			// Missing or unexpected reality fields just drop out of the link.
			if err := json.Unmarshal(ss.RealitySettings, &reality); err == nil {
				if reality.Settings.PublicKey != "" {
					query.Set("pbk", reality.Settings.PublicKey)
				}
				if reality.Settings.Fingerprint != "" {
					query.Set("fp", reality.Settings.Fingerprint)
				}
				if len(reality.ServerNames) > 0 {
					query.Set("sni", reality.ServerNames[0])
				}
				if len(reality.ShortIDs) > 0 {
					query.Set("sid", reality.ShortIDs[0])
				}
			}
		}
	}

	if client.Flow != "" {
		query.Set("flow", client.Flow)
	}

	link := url.URL{
		Scheme:   "vless",
		User:     url.User(client.ID.String()),
		Host:     fmt.Sprintf("%s:%d", address, inbound.Port),
		RawQuery: query.Encode(),
		Fragment: remarkFragment(inbound.Remark, client.Email),
	}

	return link.String(), nil
}

// SubscriptionURL builds the subscription URL for a client's subId
func SubscriptionURL(base, subID string) string {
	return fmt.Sprintf("%s/sub/%s", strings.TrimRight(base, "/"), subID)
}

// QR renders the given text as a PNG QR code with medium recovery level
func QR(text string) ([]byte, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// remarkFragment combines the inbound remark and the client email into the
// link's display name
func remarkFragment(remark, email string) string {
	switch {
	case remark == "":
		return email
	case email == "":
		return remark
	default:
		return remark + "-" + email
	}
}
