package panelclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DatabaseAPI exposes the database maintenance operations of the panel
type DatabaseAPI struct {
	session *Session
	logger  *logrus.Logger
}

// Export triggers a server-side database backup. Success is the whole
// contract: the panel pushes the backup elsewhere and may answer with a
// non-JSON body, so only a parseable success=false envelope counts as
// failure.
func (a *DatabaseAPI) Export(ctx context.Context) error {
	const op = "export database"

	a.logger.Info("Requesting database backup")

	body, err := a.session.get(ctx, op, fmt.Sprintf("%s/createbackup", inboundsBase))
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil {
		return nil
	}

	if !*env.Success {
		return &APIError{Op: op, Msg: env.Msg}
	}

	return nil
}
