package jellyfin

import "strings"

// Item is a single addressable record in the server's library.
type Item struct {
	ID             string            `json:"Id"`
	Name           string            `json:"Name"`
	Type           string            `json:"Type"`
	ProductionYear int               `json:"ProductionYear"`
	ProviderIDs    map[string]string `json:"ProviderIds"`
	ImageTags      map[string]string `json:"ImageTags"`
}

// ProviderID returns the external id recorded for a provider, matching the
// provider name case-insensitively the way the server does.
func (i Item) ProviderID(provider string) string {
	if v, ok := i.ProviderIDs[provider]; ok {
		return v
	}
	for k, v := range i.ProviderIDs {
		if strings.EqualFold(k, provider) {
			return v
		}
	}
	return ""
}

// HasPrimaryImageTag reports whether the item carries primary artwork.
func (i Item) HasPrimaryImageTag() bool {
	_, ok := i.ImageTags["Primary"]
	return ok
}

// CollectionSummary is the subset of collection fields returned by list
// queries: enough to resolve identity without fetching each record.
type CollectionSummary struct {
	ID   string   `json:"Id"`
	Name string   `json:"Name"`
	Tags []string `json:"Tags"`
}

// itemsPage is the envelope the server wraps list responses in.
type itemsPage[T any] struct {
	Items []T `json:"Items"`
}
