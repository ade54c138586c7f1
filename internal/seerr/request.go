package seerr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"listsync/internal/list"
)

// SearchResult is one entry from the request service's search index.
type SearchResult struct {
	ID          int        `json:"id"`
	MediaType   string     `json:"mediaType"`
	ReleaseDate string     `json:"releaseDate"`
	MediaInfo   *MediaInfo `json:"mediaInfo"`
}

// MediaInfo is present when the service already tracks the media. A non-nil
// JellyfinMediaID marks the media as present on the server.
type MediaInfo struct {
	ImdbID          string  `json:"ImdbId"`
	JellyfinMediaID *string `json:"jellyfinMediaId"`
}

// releaseYear extracts the year from a YYYY-MM-DD release date.
func (r SearchResult) releaseYear() string {
	year, _, _ := strings.Cut(r.ReleaseDate, "-")
	return year
}

// onServer reports whether the service already sees the media on the server.
func (r SearchResult) onServer() bool {
	return r.MediaInfo != nil && r.MediaInfo.JellyfinMediaID != nil
}

// Search queries the request index by title.
func (c *Client) Search(ctx context.Context, title string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("query", title)

	req, err := c.newRequest(ctx, http.MethodGet, "/search", q, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: unexpected status %s", resp.Status)
	}

	var page struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return page.Results, nil
}

// SubmitRequest submits one acquisition request.
func (c *Client) SubmitRequest(ctx context.Context, mediaType string, mediaID int) error {
	body, err := json.Marshal(map[string]any{
		"mediaType": mediaType,
		"mediaId":   mediaID,
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/request", nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submit request: unexpected status %s", resp.Status)
	}
	return nil
}

// RequestIfMissing searches the request index for the item and submits an
// acquisition request for the first match, unless the service already sees
// the media on the server. Every step is best-effort: search failures,
// no-match, and already-present all log and return without error.
func (c *Client) RequestIfMissing(ctx context.Context, item list.SourceItem) {
	results, err := c.Search(ctx, item.Title)
	if err != nil {
		c.log.Warn("request service search failed", "item", item.String(), "error", err)
		return
	}

	matched := c.findMatch(item, results)
	if matched == nil {
		c.log.Debug("no request service match", "item", item.String())
		return
	}

	if matched.onServer() {
		c.log.Debug("already on server, skipping request", "item", item.String())
		return
	}

	if err := c.SubmitRequest(ctx, matched.MediaType, matched.ID); err != nil {
		c.log.Warn("acquisition request failed", "item", item.String(), "error", err)
		return
	}
	c.log.Info("requested acquisition", "item", item.String(), "media_type", matched.MediaType, "media_id", matched.ID)
}

// findMatch picks the first result matching by external id, or failing that
// by release year. External id comparison takes precedence per result.
func (c *Client) findMatch(item list.SourceItem, results []SearchResult) *SearchResult {
	for i := range results {
		r := &results[i]
		if r.MediaInfo != nil && r.MediaInfo.ImdbID != "" {
			if r.MediaInfo.ImdbID == item.ExternalID {
				return r
			}
		} else if r.ReleaseDate != "" && item.ReleaseYear != 0 {
			if r.releaseYear() == strconv.Itoa(item.ReleaseYear) {
				return r
			}
		}
	}
	return nil
}
