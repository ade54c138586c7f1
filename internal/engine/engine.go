// Package engine orchestrates one reconciliation run: resolve the
// collection, reconcile each source item, then rebuild the cover.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"listsync/internal/list"
	"listsync/internal/match"
	"listsync/internal/runlog"
)

// Resolver resolves or creates the collection for a source list.
type Resolver interface {
	ResolveOrCreate(ctx context.Context, listName, listID, description, sourceLabel string) (string, error)
}

// Reconciler owns membership semantics.
type Reconciler interface {
	AddItem(ctx context.Context, collectionID string, item list.SourceItem) (bool, match.Result)
	Clear(ctx context.Context, collectionID string) error
}

// Requester forwards unmatched items to the request service.
type Requester interface {
	RequestIfMissing(ctx context.Context, item list.SourceItem)
}

// CoverBuilder produces the composite cover image.
type CoverBuilder interface {
	BuildCover(ctx context.Context, collectionID, collectionName string) ([]byte, error)
}

// ImageStore uploads collection artwork.
type ImageStore interface {
	HasPrimaryImage(ctx context.Context, itemID string) (bool, error)
	UploadPrimaryImage(ctx context.Context, itemID string, data []byte, mimeType string) error
}

// Summary is the aggregate outcome of one run.
type Summary struct {
	CollectionID    string
	Matched         int
	Unmatched       int
	Requested       int
	CoverUploaded   bool
	UnmatchedTitles []string
}

// Failed reports whether any item failed to reconcile.
func (s Summary) Failed() bool {
	return s.Unmatched > 0
}

// Options tune a run.
type Options struct {
	ClearBeforeSync bool
	SkipCover       bool
	ForceCover      bool // replace an existing cover
	SourceLabel     string
}

// Engine drives reconciliation runs. Requester, cover, images, and runs may
// be nil to disable the corresponding stage.
type Engine struct {
	resolver   Resolver
	reconciler Reconciler
	requester  Requester
	cover      CoverBuilder
	images     ImageStore
	runs       *runlog.Store
	log        *slog.Logger
}

// New creates an Engine.
func New(resolver Resolver, reconciler Reconciler, requester Requester, cover CoverBuilder, images ImageStore, runs *runlog.Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		resolver:   resolver,
		reconciler: reconciler,
		requester:  requester,
		cover:      cover,
		images:     images,
		runs:       runs,
		log:        log.With("component", "engine"),
	}
}

// SyncList runs one full reconciliation for a list. The item loop is
// sequential: each item is fully resolved before the next begins, and the
// context is checked between items. Per-item failures never abort the run;
// only collection resolution errors do.
func (e *Engine) SyncList(ctx context.Context, l *list.List, opts Options) (Summary, error) {
	started := time.Now()
	sourceLabel := opts.SourceLabel
	if sourceLabel == "" {
		sourceLabel = l.Source
	}

	collectionID, err := e.resolver.ResolveOrCreate(ctx, l.Name, l.ID, l.Description, sourceLabel)
	if err != nil {
		return Summary{}, fmt.Errorf("resolve collection for list %q: %w", l.Name, err)
	}

	if opts.ClearBeforeSync {
		if err := e.reconciler.Clear(ctx, collectionID); err != nil {
			e.log.Warn("clearing collection failed", "collection_id", collectionID, "error", err)
		}
	}

	summary := Summary{CollectionID: collectionID}
	for _, item := range l.Items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		present, result := e.reconciler.AddItem(ctx, collectionID, item)
		switch {
		case present:
			summary.Matched++
		case result.Matched():
			// Matched but the add failed; not a candidate for acquisition.
			summary.Unmatched++
			summary.UnmatchedTitles = append(summary.UnmatchedTitles, item.Title)
		default:
			summary.Unmatched++
			summary.UnmatchedTitles = append(summary.UnmatchedTitles, item.Title)
			if e.requester != nil {
				e.requester.RequestIfMissing(ctx, item)
				summary.Requested++
			}
		}
	}

	if !opts.SkipCover && e.cover != nil {
		summary.CoverUploaded = e.buildAndUploadCover(ctx, collectionID, l.Name, opts.ForceCover)
	}

	e.recordRun(ctx, l, summary, started)

	e.log.Info("list reconciled",
		"list", l.Name,
		"collection_id", collectionID,
		"matched", summary.Matched,
		"unmatched", summary.Unmatched,
		"requested", summary.Requested,
		"cover_uploaded", summary.CoverUploaded)
	return summary, nil
}

// buildAndUploadCover regenerates the collection cover. Every failure here
// degrades gracefully: a run without a cover is still a successful run.
func (e *Engine) buildAndUploadCover(ctx context.Context, collectionID, name string, force bool) bool {
	if e.images != nil && !force {
		has, err := e.images.HasPrimaryImage(ctx, collectionID)
		if err != nil {
			e.log.Warn("checking existing cover failed", "collection_id", collectionID, "error", err)
			return false
		}
		if has {
			e.log.Debug("collection already has a cover, skipping", "collection_id", collectionID)
			return false
		}
	}

	data, err := e.cover.BuildCover(ctx, collectionID, name)
	if err != nil {
		e.log.Warn("building cover failed", "collection_id", collectionID, "error", err)
		return false
	}
	if data == nil {
		return false
	}

	if e.images == nil {
		return false
	}
	if err := e.images.UploadPrimaryImage(ctx, collectionID, data, "image/jpeg"); err != nil {
		e.log.Warn("uploading cover failed", "collection_id", collectionID, "error", err)
		return false
	}
	return true
}

// recordRun persists the outcome when a run log is configured.
func (e *Engine) recordRun(ctx context.Context, l *list.List, s Summary, started time.Time) {
	if e.runs == nil {
		return
	}
	run := runlog.Run{
		ID:              uuid.NewString(),
		ListID:          l.ID,
		ListName:        l.Name,
		CollectionID:    s.CollectionID,
		StartedAt:       started,
		FinishedAt:      time.Now(),
		Matched:         s.Matched,
		Unmatched:       s.Unmatched,
		Requested:       s.Requested,
		CoverUploaded:   s.CoverUploaded,
		UnmatchedTitles: s.UnmatchedTitles,
	}
	if err := e.runs.Record(ctx, run); err != nil {
		e.log.Warn("recording run failed", "list", l.Name, "error", err)
	}
}
