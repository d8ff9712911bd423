// Package panelclient implements a client for the 3x-ui panel management
// API: inbound configuration, client accounts, traffic statistics and
// database backup, over the panel's {success,msg,obj} JSON envelope.
package panelclient

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"xui-panel-client/internal/config"
)

// Config holds the connection settings for one panel
type Config struct {
	// Host is the panel base URL, e.g. "https://panel.example.com:2053".
	Host     string
	Username string
	Password string

	// Token is the panel's optional secret token, sent as loginSecret
	// alongside the credentials when set.
	Token string

	// InsecureSkipVerify disables TLS certificate verification. Panels are
	// commonly deployed with self-signed certificates.
	InsecureSkipVerify bool

	// Timeout bounds each HTTP round trip. Zero selects the default.
	Timeout time.Duration

	// RetryCount sets how many times a transport-level failure is retried
	// with backoff. Zero selects the default, negative disables retries.
	RetryCount int

	// SessionTTL bounds how long a login is reused before a fresh one is
	// issued. Zero selects the default.
	SessionTTL time.Duration
}

// API is the entry point of the library: one authenticated session shared by
// the three resource APIs.
type API struct {
	Client   *ClientAPI
	Inbound  *InboundAPI
	Database *DatabaseAPI

	session *Session
}

// New creates an API for the given panel. A nil logger falls back to a
// default logrus logger.
func New(cfg Config, logger *logrus.Logger) *API {
	if logger == nil {
		logger = logrus.New()
	}

	session := newSession(cfg, logger)

	return &API{
		Client:   &ClientAPI{session: session, logger: logger},
		Inbound:  &InboundAPI{session: session, logger: logger},
		Database: &DatabaseAPI{session: session, logger: logger},
		session:  session,
	}
}

// NewFromEnv creates an API from the XUI_* environment variables (XUI_HOST,
// XUI_USERNAME, XUI_PASSWORD, plus optional XUI_TOKEN, XUI_TLS_SKIP_VERIFY,
// XUI_TIMEOUT_SECONDS and XUI_LOG_LEVEL).
func NewFromEnv(logger *logrus.Logger) (*API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.New()
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	return New(Config{
		Host:               cfg.Host,
		Username:           cfg.Username,
		Password:           cfg.Password,
		Token:              cfg.Token,
		InsecureSkipVerify: cfg.TLSSkipVerify,
		Timeout:            time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, logger), nil
}

// Session returns the shared session, e.g. to pre-seed cookies or force a
// re-login.
func (a *API) Session() *Session {
	return a.session
}

// Login authenticates eagerly. Calling it is optional; every request logs in
// on demand.
func (a *API) Login(ctx context.Context) error {
	return a.session.ensureLogin(ctx)
}
