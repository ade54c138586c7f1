package jellyfin

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// HasPrimaryImage reports whether the item already has primary artwork.
func (c *Client) HasPrimaryImage(ctx context.Context, itemID string) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/Items/%s/Images/Primary", itemID), nil, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("check primary image: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode != http.StatusNotFound, nil
}

// PosterURLs returns primary-image URLs for up to limit collection members,
// newest first. Members without artwork are skipped.
func (c *Client) PosterURLs(ctx context.Context, collectionID string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("Recursive", "true")
	q.Set("parentId", collectionID)
	q.Set("enableImages", "true")
	q.Set("sortBy", "DateCreated")
	q.Set("sortOrder", "Descending")
	q.Set("limit", strconv.Itoa(limit))

	var page itemsPage[Item]
	if err := c.getJSON(ctx, c.userItemsPath(), q, &page); err != nil {
		return nil, fmt.Errorf("list member posters: %w", err)
	}

	urls := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		if !it.HasPrimaryImageTag() {
			continue
		}
		urls = append(urls, fmt.Sprintf("%s/Items/%s/Images/Primary", c.baseURL, it.ID))
		if len(urls) == limit {
			break
		}
	}
	return urls, nil
}

// FetchImage downloads one image by absolute URL with the client's token.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Emby-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}

// UploadPrimaryImage replaces the item's primary artwork. The server expects
// the image bytes base64-encoded in the request body.
func (c *Client) UploadPrimaryImage(ctx context.Context, itemID string, data []byte, mimeType string) error {
	encoded := base64.StdEncoding.EncodeToString(data)

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/Items/%s/Images/Primary", itemID), nil, strings.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload primary image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("upload primary image: unexpected status %s", resp.Status)
	}
	return nil
}
