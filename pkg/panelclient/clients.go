package panelclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"xui-panel-client/models"
)

// inboundsBase is the path prefix shared by all inbound and client endpoints
const inboundsBase = "panel/api/inbounds"

// ClientAPI exposes the client (proxy account) operations of the panel
type ClientAPI struct {
	session *Session
	logger  *logrus.Logger
}

// IPRecords is the result of an IP lookup. Panels answer either with a
// structured address list or with a literal informational string such as
// "No IP Record"; the string is carried through unchanged in Note.
type IPRecords struct {
	IPs  []string
	Note string
}

// GetByEmail fetches the traffic record of a client by its email. A missing
// record yields a NotFoundError.
func (a *ClientAPI) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	const op = "get client by email"

	body, err := a.session.get(ctx, op, fmt.Sprintf("%s/getClientTraffics/%s", inboundsBase, url.PathEscape(email)))
	if err != nil {
		return nil, err
	}

	obj, err := unwrap(op, body)
	if err != nil {
		return nil, err
	}

	if emptyObj(obj) {
		return nil, &NotFoundError{Resource: "client", Key: email}
	}

	var client models.Client
	if err := json.Unmarshal(obj, &client); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal client: %w", op, err)
	}

	return &client, nil
}

// GetIPs fetches the IP addresses recorded for a client
func (a *ClientAPI) GetIPs(ctx context.Context, email string) (*IPRecords, error) {
	const op = "get client ips"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/clientIps/%s", inboundsBase, url.PathEscape(email)), nil)
	if err != nil {
		return nil, err
	}

	obj, err := unwrap(op, body)
	if err != nil {
		return nil, err
	}

	records := &IPRecords{}
	if emptyObj(obj) {
		return records, nil
	}

	if note, ok := stringObj(obj); ok {
		records.Note = note
		return records, nil
	}

	if err := json.Unmarshal(obj, &records.IPs); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal ip list: %w", op, err)
	}

	return records, nil
}

// Add adds clients to an inbound in bulk. The panel expects the client list
// wrapped in a JSON-encoded settings string.
func (a *ClientAPI) Add(ctx context.Context, inboundID int, clients []models.Client) error {
	const op = "add client"

	requestBody, err := clientSettingsBody(inboundID, clients)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Infof("Adding %d client(s) to inbound %d", len(clients), inboundID)

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/addClient", inboundsBase), requestBody)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// Update updates one client, addressed by its protocol identifier (UUID or
// password). The client's InboundID must be set; the panel uses it to locate
// the record.
func (a *ClientAPI) Update(ctx context.Context, clientID string, client models.Client) error {
	const op = "update client"

	requestBody, err := clientSettingsBody(client.InboundID, []models.Client{client})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Infof("Updating client %s on inbound %d", client.Email, client.InboundID)

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/updateClient/%s", inboundsBase, url.PathEscape(clientID)), requestBody)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// ResetIPs clears the IP records of a client
func (a *ClientAPI) ResetIPs(ctx context.Context, email string) error {
	const op = "reset client ips"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/clearClientIps/%s", inboundsBase, url.PathEscape(email)), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// ResetStats resets the traffic counters of a client
func (a *ClientAPI) ResetStats(ctx context.Context, inboundID int, email string) error {
	const op = "reset client stats"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/%d/resetClientTraffic/%s", inboundsBase, inboundID, url.PathEscape(email)), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// Delete removes a client from an inbound by its protocol identifier
func (a *ClientAPI) Delete(ctx context.Context, inboundID int, clientID string) error {
	const op = "delete client"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/%d/delClient/%s", inboundsBase, inboundID, url.PathEscape(clientID)), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// DeleteDepleted removes all clients of an inbound that exhausted their quota
func (a *ClientAPI) DeleteDepleted(ctx context.Context, inboundID int) error {
	const op = "delete depleted clients"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/delDepletedClients/%d", inboundsBase, inboundID), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// Online returns the emails of the clients currently online
func (a *ClientAPI) Online(ctx context.Context) ([]string, error) {
	const op = "get online clients"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/onlines", inboundsBase), nil)
	if err != nil {
		return nil, err
	}

	obj, err := unwrap(op, body)
	if err != nil {
		return nil, err
	}

	if emptyObj(obj) {
		return nil, nil
	}

	var emails []string
	if err := json.Unmarshal(obj, &emails); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal online clients: %w", op, err)
	}

	return emails, nil
}

// GetTrafficByID fetches the traffic records matching a client UUID. An
// unknown id yields an empty list, not an error.
func (a *ClientAPI) GetTrafficByID(ctx context.Context, clientUUID string) ([]models.Client, error) {
	const op = "get client traffic by id"

	body, err := a.session.get(ctx, op, fmt.Sprintf("%s/getClientTrafficsById/%s", inboundsBase, url.PathEscape(clientUUID)))
	if err != nil {
		return nil, err
	}

	obj, err := unwrap(op, body)
	if err != nil {
		return nil, err
	}

	if emptyObj(obj) {
		return nil, nil
	}

	var clients []models.Client
	if err := json.Unmarshal(obj, &clients); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal traffic records: %w", op, err)
	}

	return clients, nil
}

// clientSettingsBody builds the {id, settings} request body the panel expects
// for client writes: the client list is JSON-encoded into a string nested
// under settings.
func clientSettingsBody(inboundID int, clients []models.Client) (map[string]interface{}, error) {
	settings, err := json.Marshal(map[string]interface{}{"clients": clients})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	return map[string]interface{}{
		"id":       inboundID,
		"settings": string(settings),
	}, nil
}
