// Package collection resolves collection identity and reconciles membership
// on the media server. Identity is persisted in the collection's free-text
// tag set; the server has no native external-correlation field, so the tags
// double as human labels and machine identity markers.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"listsync/internal/jellyfin"
)

// Marker is the literal tag identifying collections managed by this tool.
const Marker = "listsync"

// Identity is the durable key correlating a server collection with a source
// list. The tag set is its storage encoding; nothing outside this file
// touches raw identity tags.
type Identity struct {
	SourceLabel string // originating importer/plugin label
	ListID      string // stable list id, independent of display name
}

// listIDTag is the JSON-encoded list id. Encoding keeps arbitrary list ids
// unambiguous among ordinary human-authored tags.
func (id Identity) listIDTag() string {
	b, _ := json.Marshal(id.ListID)
	return string(b)
}

// Tags returns the identity's tag encoding: marker, source label, list id.
func (id Identity) Tags() []string {
	return []string{Marker, id.SourceLabel, id.listIDTag()}
}

// MatchesTags reports whether a tag set carries this identity's list id.
func (id Identity) MatchesTags(tags []string) bool {
	return slices.Contains(tags, id.listIDTag())
}

// MergeInto unions the identity tags into an existing tag set, preserving
// existing tags and their order.
func (id Identity) MergeInto(existing []string) []string {
	merged := slices.Clone(existing)
	for _, t := range id.Tags() {
		if t != "" && !slices.Contains(merged, t) {
			merged = append(merged, t)
		}
	}
	return merged
}

// IdentityStore is the catalog surface identity resolution needs.
type IdentityStore interface {
	Collections(ctx context.Context) ([]jellyfin.CollectionSummary, error)
	CreateCollection(ctx context.Context, name string) (string, error)
	ItemDocument(ctx context.Context, itemID string) (jellyfin.Document, error)
	UpdateItem(ctx context.Context, itemID string, doc jellyfin.Document) error
}

// Resolver finds or creates the collection for a source list.
type Resolver struct {
	store IdentityStore
	log   *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(store IdentityStore, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{store: store, log: log.With("component", "resolver")}
}

// ResolveOrCreate returns the id of the collection for the given list,
// creating it if none exists. Resolution prefers the list-id tag over the
// display name, so renaming a list never forks its collection. The final
// metadata write is idempotent: re-running with identical inputs changes
// nothing. Transport errors propagate; retry policy belongs to the caller.
func (r *Resolver) ResolveOrCreate(ctx context.Context, listName, listID, description, sourceLabel string) (string, error) {
	identity := Identity{SourceLabel: sourceLabel, ListID: listID}

	collections, err := r.store.Collections(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve collection: %w", err)
	}

	var collectionID string
	for _, c := range collections {
		if identity.MatchesTags(c.Tags) {
			collectionID = c.ID
			break
		}
	}

	// Name fallback covers collections created by hand or before the
	// tagging convention existed.
	if collectionID == "" {
		for _, c := range collections {
			if c.Name == listName {
				collectionID = c.ID
				break
			}
		}
	}

	if collectionID != "" {
		r.log.Info("found existing collection", "name", listName, "collection_id", collectionID)
	} else {
		r.log.Info("no matching collection, creating", "name", listName)
		collectionID, err = r.store.CreateCollection(ctx, listName)
		if err != nil {
			return "", fmt.Errorf("create collection: %w", err)
		}
	}

	if err := r.stampIdentity(ctx, collectionID, identity, description); err != nil {
		return "", err
	}
	return collectionID, nil
}

// stampIdentity writes the identity tags and, when absent, the description
// onto the collection record. Existing human-authored descriptions are never
// overwritten.
func (r *Resolver) stampIdentity(ctx context.Context, collectionID string, identity Identity, description string) error {
	doc, err := r.store.ItemDocument(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("stamp identity: %w", err)
	}

	if doc.Overview() == "" && description != "" {
		doc.SetOverview(description)
	}
	doc.SetTags(identity.MergeInto(doc.Tags()))

	if err := r.store.UpdateItem(ctx, collectionID, doc); err != nil {
		return fmt.Errorf("stamp identity: %w", err)
	}
	return nil
}
