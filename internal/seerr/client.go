// Package seerr is an HTTP client for a Jellyseerr-compatible request
// service: search the request index, submit acquisition requests.
package seerr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// ErrUnreachable is returned when the service status probe fails.
var ErrUnreachable = errors.New("seerr: server is not reachable")

// ErrUnauthenticated is returned when neither the API key nor the session
// credentials are accepted.
var ErrUnauthenticated = errors.New("seerr: user is not authenticated")

// validUserTypes are the session auth backends the service supports.
var validUserTypes = map[string]bool{
	"local": true, "plex": true, "jellyfin": true,
}

// Client talks to the request service. All request/search operations are
// best-effort; only construction-time connectivity and auth failures are
// fatal.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Credentials selects how the client authenticates: an API key, or an
// email/password session of the given user type.
type Credentials struct {
	APIKey   string
	Email    string
	Password string
	UserType string // local, plex, or jellyfin; defaults to local
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A cookie jar is attached if the
// client has none, since session auth rides on cookies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "seerr")
	}
}

// New creates a client, normalizes the base URL to the /api/v1 root, and
// verifies the service is reachable and the credentials authenticate.
func New(ctx context.Context, serverURL string, creds Credentials, opts ...Option) (*Client, error) {
	base := strings.TrimSuffix(serverURL, "/")
	if !strings.HasSuffix(base, "/api/v1") {
		base += "/api/v1"
	}

	userType := creds.UserType
	if userType == "" {
		userType = "local"
	}
	if !validUserTypes[userType] {
		return nil, fmt.Errorf("seerr: invalid user type %q", creds.UserType)
	}

	c := &Client{
		baseURL: base,
		apiKey:  creds.APIKey,
		log:     slog.Default().With("component", "seerr"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("seerr: cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}

	if err := c.probeStatus(ctx); err != nil {
		return nil, err
	}
	if creds.Email != "" && creds.Password != "" {
		if err := c.login(ctx, userType, creds.Email, creds.Password); err != nil {
			return nil, err
		}
	}
	if err := c.probeAuth(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) probeStatus(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/status", nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ErrUnreachable
	}
	return nil
}

func (c *Client) login(ctx context.Context, userType, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return fmt.Errorf("seerr: encode login: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/"+userType, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("seerr login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}
	return nil
}

func (c *Client) probeAuth(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("seerr auth probe: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ErrUnauthenticated
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body *bytes.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var r *http.Request
	var err error
	if body != nil {
		r, err = http.NewRequestWithContext(ctx, method, u, body)
	} else {
		r, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		r.Header.Set("X-Api-Key", c.apiKey)
	}
	return r, nil
}
