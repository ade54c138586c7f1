package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Collections lists every box set on the server with the fields needed for
// identity resolution.
func (c *Client) Collections(ctx context.Context) ([]CollectionSummary, error) {
	q := baseQuery()
	q.Set("includeItemTypes", "BoxSet")
	q.Set("fields", "Name,Id,Tags")

	var page itemsPage[CollectionSummary]
	if err := c.getJSON(ctx, c.userItemsPath(), q, &page); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return page.Items, nil
}

// CreateCollection creates an empty collection and returns its id.
func (c *Client) CreateCollection(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("name", name)

	req, err := c.newRequest(ctx, http.MethodPost, "/Collections", q, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create collection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create collection: unexpected status %s", resp.Status)
	}

	var created struct {
		ID string `json:"Id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return created.ID, nil
}

// MemberIDs returns the ids of the collection's current members.
func (c *Client) MemberIDs(ctx context.Context, collectionID string) ([]string, error) {
	var page itemsPage[Item]
	path := fmt.Sprintf("/Collections/%s/Items", collectionID)
	if err := c.getJSON(ctx, path, nil, &page); err != nil {
		return nil, fmt.Errorf("collection members: %w", err)
	}
	ids := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// AddToCollection adds a single item to the collection. 200 and 204 both
// count as success; the server is not consistent about which it returns.
func (c *Client) AddToCollection(ctx context.Context, collectionID, itemID string) error {
	q := url.Values{}
	q.Set("ids", itemID)

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/Collections/%s/Items", collectionID), q, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("add to collection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("add to collection: unexpected status %s", resp.Status)
	}
	return nil
}

// RemoveFromCollection removes a batch of items from the collection.
func (c *Client) RemoveFromCollection(ctx context.Context, collectionID string, itemIDs []string) error {
	q := url.Values{}
	q.Set("ids", strings.Join(itemIDs, ","))

	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/Collections/%s/Items", collectionID), q, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove from collection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("remove from collection: unexpected status %s", resp.Status)
	}
	return nil
}

// ItemDocument fetches the full JSON record for an item. The record is kept
// as an opaque document so an update can round-trip fields this client does
// not model; the server replaces the whole record on update.
func (c *Client) ItemDocument(ctx context.Context, itemID string) (Document, error) {
	var doc Document
	path := fmt.Sprintf("/Users/%s/Items/%s", c.userID, itemID)
	if err := c.getJSON(ctx, path, nil, &doc); err != nil {
		return nil, fmt.Errorf("fetch item %s: %w", itemID, err)
	}
	return doc, nil
}

// UpdateItem posts a full item document back to the server.
func (c *Client) UpdateItem(ctx context.Context, itemID string, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/Items/%s", itemID), nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("update item: unexpected status %s", resp.Status)
	}
	return nil
}
