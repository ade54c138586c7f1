package collection

import (
	"context"
	"log/slog"
	"slices"

	"listsync/internal/jellyfin"
	"listsync/internal/list"
	"listsync/internal/match"
)

// removeBatchSize caps ids per bulk-remove call; the server rejects larger
// batches.
const removeBatchSize = 10

// Membership is the catalog surface membership reconciliation needs.
type Membership interface {
	MemberIDs(ctx context.Context, collectionID string) ([]string, error)
	AddToCollection(ctx context.Context, collectionID, itemID string) error
	ItemsByParent(ctx context.Context, parentID string) ([]jellyfin.Item, error)
	RemoveFromCollection(ctx context.Context, collectionID string, itemIDs []string) error
}

// ItemMatcher resolves a source item to a catalog entry.
type ItemMatcher interface {
	Match(ctx context.Context, item list.SourceItem) (match.Result, error)
}

// Reconciler owns idempotent add/skip/remove semantics for collection
// membership.
type Reconciler struct {
	catalog Membership
	matcher ItemMatcher
	log     *slog.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(catalog Membership, matcher ItemMatcher, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{catalog: catalog, matcher: matcher, log: log.With("component", "reconciler")}
}

// AddItem matches a source item and ensures it is a member of the collection.
// The return value reports presence after the call: true whether the item was
// newly added or already there. An unmatched item is an expected non-fatal
// outcome, logged and reported as false, never an error.
func (r *Reconciler) AddItem(ctx context.Context, collectionID string, item list.SourceItem) (bool, match.Result) {
	result, err := r.matcher.Match(ctx, item)
	if err != nil {
		r.log.Warn("match failed", "item", item.String(), "error", err)
		return false, result
	}
	if !result.Matched() {
		r.log.Warn("item not found in catalog", "item", item.String())
		return false, result
	}

	members, err := r.catalog.MemberIDs(ctx, collectionID)
	if err != nil {
		r.log.Warn("listing members failed", "item", item.String(), "error", err)
		return false, result
	}
	if slices.Contains(members, result.Entry.ID) {
		r.log.Debug("item already in collection", "item", item.String())
		return true, result
	}

	if err := r.catalog.AddToCollection(ctx, collectionID, result.Entry.ID); err != nil {
		r.log.Warn("adding to collection failed", "item", item.String(), "error", err)
		return false, result
	}
	r.log.Info("added to collection",
		"item", item.String(),
		"matched", result.Entry.Name,
		"tier", result.Tier.String())
	return true, result
}

// Clear removes every member from the collection in fixed-size batches.
// Best-effort: batch failures are logged, not retried, and not reported
// individually. Callers cannot distinguish "nothing to remove" from "some
// removals failed".
func (r *Reconciler) Clear(ctx context.Context, collectionID string) error {
	members, err := r.catalog.ItemsByParent(ctx, collectionID)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	var failed int
	for start := 0; start < len(ids); start += removeBatchSize {
		end := min(start+removeBatchSize, len(ids))
		batch := ids[start:end:end]
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.catalog.RemoveFromCollection(ctx, collectionID, batch); err != nil {
			failed++
			r.log.Warn("batch removal failed", "collection_id", collectionID, "batch_size", len(batch), "error", err)
		}
	}

	r.log.Info("cleared collection", "collection_id", collectionID, "members", len(ids), "failed_batches", failed)
	return nil
}
