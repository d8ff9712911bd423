package panelclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"xui-panel-client/internal/constants"
)

const sessionCacheKey = "session"

// Session holds the panel address, credentials and the cached login cookies
// shared by the resource APIs. Logins happen lazily on the first request and
// again whenever the cached session expires or the panel rejects it.
type Session struct {
	httpClient  *resty.Client
	host        string
	username    string
	password    string
	token       string
	cookieCache *cache.Cache
	loginMu     sync.Mutex
	logger      *logrus.Logger
}

// newSession creates a session for the given panel
func newSession(cfg Config, logger *logrus.Logger) *Session {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout * time.Second
	}
	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = constants.SessionTTL * time.Minute
	}
	retryCount := cfg.RetryCount
	switch {
	case retryCount == 0:
		retryCount = constants.DefaultRetryCount
	case retryCount < 0:
		retryCount = 0
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(constants.DefaultRetryWaitTime * time.Second).
		SetRetryMaxWaitTime(constants.DefaultRetryMaxWaitTime * time.Second)

	if cfg.InsecureSkipVerify {
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Session{
		httpClient:  httpClient,
		host:        strings.TrimRight(cfg.Host, "/"),
		username:    cfg.Username,
		password:    cfg.Password,
		token:       cfg.Token,
		cookieCache: cache.New(sessionTTL, constants.SessionCleanupInterval*time.Minute),
		logger:      logger,
	}
}

// Host returns the panel base URL the session talks to
func (s *Session) Host() string {
	return s.host
}

// SetCookies pre-seeds the session cookies, bypassing login. Intended for
// tests and for callers that persist sessions externally.
func (s *Session) SetCookies(cookies []*http.Cookie) {
	s.cookieCache.Set(sessionCacheKey, cookies, cache.DefaultExpiration)
}

// Invalidate drops the cached session so the next request logs in again
func (s *Session) Invalidate() {
	s.cookieCache.Delete(sessionCacheKey)
}

// ensureLogin makes sure a session cookie is cached, logging in at most once
// even when called concurrently: late arrivals wait on the mutex and find the
// cookie the in-flight login stored.
func (s *Session) ensureLogin(ctx context.Context) error {
	if _, found := s.cookieCache.Get(sessionCacheKey); found {
		return nil
	}

	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	if _, found := s.cookieCache.Get(sessionCacheKey); found {
		return nil
	}

	return s.login(ctx)
}

// login authenticates against the panel and caches the session cookies
func (s *Session) login(ctx context.Context) error {
	s.logger.Infof("Logging in to panel at %s", s.host)
	s.logger.Debugf("Using username: %s", s.username)

	credentials := map[string]string{
		"username": s.username,
		"password": s.password,
	}
	if s.token != "" {
		credentials["loginSecret"] = s.token
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(fmt.Sprintf("%s/login", s.host))

	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		s.logger.Errorf("Login failed - URL: %s/login, Status: %d, Response: %s",
			s.host, resp.StatusCode(), string(resp.Body()))
		return &AuthError{Msg: fmt.Sprintf("status code %d: %s", resp.StatusCode(), string(resp.Body()))}
	}

	if _, err := unwrap("login", resp.Body()); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &AuthError{Msg: apiErr.Msg}
		}
		return err
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return &AuthError{Msg: "no session cookie received from server"}
	}

	s.cookieCache.Set(sessionCacheKey, cookies, cache.DefaultExpiration)
	s.logger.Info("Successfully logged in to panel")
	return nil
}

// get issues an authenticated GET request and returns the raw response body
func (s *Session) get(ctx context.Context, op, path string) ([]byte, error) {
	return s.do(ctx, op, resty.MethodGet, path, nil)
}

// post issues an authenticated POST request and returns the raw response
// body. A nil body sends an empty POST.
func (s *Session) post(ctx context.Context, op, path string, body interface{}) ([]byte, error) {
	return s.do(ctx, op, resty.MethodPost, path, body)
}

// do runs one authenticated round trip. A rejected session is dropped and the
// request retried once after a fresh login.
func (s *Session) do(ctx context.Context, op, method, path string, body interface{}) ([]byte, error) {
	if err := s.ensureLogin(ctx); err != nil {
		return nil, err
	}

	resp, err := s.request(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		s.logger.Debugf("Session rejected with status %d, logging in again", resp.StatusCode())
		s.Invalidate()
		if err := s.ensureLogin(ctx); err != nil {
			return nil, err
		}

		resp, err = s.request(ctx, method, path, body)
		if err != nil {
			return nil, fmt.Errorf("%s request failed: %w", op, err)
		}
	}

	if resp.StatusCode() != http.StatusOK {
		s.logger.Errorf("%s failed - Status: %d, Response: %s", op, resp.StatusCode(), string(resp.Body()))
		return nil, &StatusError{Op: op, Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	return resp.Body(), nil
}

// request builds and executes a single HTTP call with the cached cookies
func (s *Session) request(ctx context.Context, method, path string, body interface{}) (*resty.Response, error) {
	req := s.httpClient.R().SetContext(ctx)

	if cookies, found := s.cookieCache.Get(sessionCacheKey); found {
		req.SetCookies(cookies.([]*http.Cookie))
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	endpoint := fmt.Sprintf("%s/%s", s.host, path)
	if method == resty.MethodGet {
		return req.Get(endpoint)
	}
	return req.Post(endpoint)
}
