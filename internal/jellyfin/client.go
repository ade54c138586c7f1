// Package jellyfin is an HTTP client for the subset of the Jellyfin API the
// reconciler needs: library queries, collections, and primary images.
package jellyfin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the server rejects the API key or user id.
var ErrUnauthorized = errors.New("jellyfin: invalid credentials")

// ErrNotFound is returned for 404 responses on single-item lookups.
var ErrNotFound = errors.New("jellyfin: not found")

// Client talks to a Jellyfin (or Emby-compatible) server.
type Client struct {
	baseURL    string
	token      string
	userID     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "jellyfin")
	}
}

// New creates a client and verifies reachability and credentials against the
// user endpoint. A failed probe is fatal: nothing downstream can proceed
// without a working catalog connection.
func New(ctx context.Context, baseURL, token, userID string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		userID:  userID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default().With("component", "jellyfin"),
	}
	for _, opt := range opts {
		opt(c)
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/Users/%s", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jellyfin server unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jellyfin probe: unexpected status %s", resp.Status)
	}
	return c, nil
}

// newRequest builds a request with the token header and encoded query.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Emby-Token", c.token)
	return req, nil
}

// getJSON executes a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("jellyfin API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// userItemsPath is the per-user library query endpoint.
func (c *Client) userItemsPath() string {
	return fmt.Sprintf("/Users/%s/Items", c.userID)
}

// baseQuery returns the query parameters shared by all library searches.
func baseQuery() url.Values {
	q := url.Values{}
	q.Set("enableTotalRecordCount", "false")
	q.Set("enableImages", "false")
	q.Set("Recursive", "true")
	return q
}

// merge copies extra parameters over q, letting callers override defaults.
func merge(q, extra url.Values) url.Values {
	for k, vs := range extra {
		q[k] = vs
	}
	return q
}
