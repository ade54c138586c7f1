package jellyfin

import (
	"context"
	"net/url"
)

// ItemsByProvider queries the whole library recursively, requesting provider
// id and type fields. includeType narrows the search when non-empty; extra
// parameters are merged last so callers can override any default.
func (c *Client) ItemsByProvider(ctx context.Context, includeType string, extra url.Values) ([]Item, error) {
	q := baseQuery()
	q.Set("fields", "ProviderIds,ProductionYear,Name,Type")
	if includeType != "" {
		q.Set("IncludeItemTypes", includeType)
	}
	merge(q, extra)

	var page itemsPage[Item]
	if err := c.getJSON(ctx, c.userItemsPath(), q, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ItemsByTitle runs a free-text search restricted to one item type.
func (c *Client) ItemsByTitle(ctx context.Context, title, includeType string, extra url.Values) ([]Item, error) {
	q := baseQuery()
	q.Set("fields", "ProviderIds,ProductionYear,Name,Type")
	q.Set("searchTerm", title)
	if includeType != "" {
		q.Set("IncludeItemTypes", includeType)
	}
	merge(q, extra)

	var page itemsPage[Item]
	if err := c.getJSON(ctx, c.userItemsPath(), q, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ItemsByParent lists every item whose parent is the given container.
func (c *Client) ItemsByParent(ctx context.Context, parentID string) ([]Item, error) {
	q := url.Values{}
	q.Set("Recursive", "true")
	q.Set("parentId", parentID)

	var page itemsPage[Item]
	if err := c.getJSON(ctx, c.userItemsPath(), q, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}
