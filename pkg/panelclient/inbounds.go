package panelclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"xui-panel-client/models"
)

// InboundAPI exposes the inbound (listener configuration) operations of the
// panel
type InboundAPI struct {
	session *Session
	logger  *logrus.Logger
}

// GetList fetches all inbounds configured on the panel
func (a *InboundAPI) GetList(ctx context.Context) ([]models.Inbound, error) {
	const op = "get inbounds"

	body, err := a.session.get(ctx, op, fmt.Sprintf("%s/list", inboundsBase))
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

	var inbounds []models.Inbound
	if err := json.Unmarshal(obj, &inbounds); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal inbounds: %w", op, err)
	}

	return inbounds, nil
}

// GetByID fetches one inbound. A missing record yields a NotFoundError.
func (a *InboundAPI) GetByID(ctx context.Context, id int) (*models.Inbound, error) {
	const op = "get inbound by id"

	body, err := a.session.get(ctx, op, fmt.Sprintf("%s/get/%d", inboundsBase, id))
	if err != nil {
		return nil, err
	}

	obj, err := unwrap(op, body)
	if err != nil {
		return nil, err
	}

	if emptyObj(obj) {
		return nil, &NotFoundError{Resource: "inbound", Key: strconv.Itoa(id)}
	}

	var inbound models.Inbound
	if err := json.Unmarshal(obj, &inbound); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal inbound: %w", op, err)
	}

	return &inbound, nil
}

// Add creates a new inbound. The nested Settings, StreamSettings and Sniffing
// are re-encoded to their JSON-string wire form by the model layer.
func (a *InboundAPI) Add(ctx context.Context, inbound models.Inbound) error {
	const op = "add inbound"

	a.logger.Infof("Adding %s inbound on port %d", inbound.Protocol, inbound.Port)

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/add", inboundsBase), inbound)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// Update replaces the configuration of an existing inbound
func (a *InboundAPI) Update(ctx context.Context, id int, inbound models.Inbound) error {
	const op = "update inbound"

	a.logger.Infof("Updating inbound %d", id)

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/update/%d", inboundsBase, id), inbound)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// Delete removes an inbound. Deleting an unknown id surfaces the panel's
// failure message as an APIError.
func (a *InboundAPI) Delete(ctx context.Context, id int) error {
	const op = "delete inbound"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/del/%d", inboundsBase, id), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// ResetAllStats resets the traffic counters of every inbound
func (a *InboundAPI) ResetAllStats(ctx context.Context) error {
	const op = "reset all inbound stats"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/resetAllTraffics", inboundsBase), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}

// ResetAllClientStats resets the traffic counters of every client of one
// inbound
func (a *InboundAPI) ResetAllClientStats(ctx context.Context, id int) error {
	const op = "reset all client stats"

	body, err := a.session.post(ctx, op, fmt.Sprintf("%s/resetAllClientTraffics/%d", inboundsBase, id), nil)
	if err != nil {
		return err
	}

	_, err = unwrap(op, body)
	return err
}
