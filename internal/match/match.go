// Package match resolves source list items against the server catalog with a
// tier-ordered algorithm: external id, release year, exact title, sole
// candidate. Tiers are ordered by specificity; the first hit wins.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"listsync/internal/jellyfin"
	"listsync/internal/list"
)

// providerName is the catalog's key for the external id vocabulary the
// source lists use.
const providerName = "Imdb"

// Tier is the confidence level at which an item matched.
type Tier int

const (
	TierUnmatched Tier = iota
	TierSoleCandidate
	TierTitle
	TierYear
	TierExternalID
)

func (t Tier) String() string {
	switch t {
	case TierExternalID:
		return "external-id"
	case TierYear:
		return "year"
	case TierTitle:
		return "title"
	case TierSoleCandidate:
		return "sole-candidate"
	default:
		return "unmatched"
	}
}

// Result pairs a source item with the catalog entry it resolved to, if any.
// Entry is nil exactly when Tier is TierUnmatched; a non-nil Entry always
// satisfies the type mapping for the item's media type.
type Result struct {
	Item  list.SourceItem
	Entry *jellyfin.Item
	Tier  Tier
}

// Matched reports whether a catalog entry was found.
func (r Result) Matched() bool {
	return r.Entry != nil
}

// Searcher is the catalog query surface the matcher runs against.
type Searcher interface {
	// ItemsByProvider queries all libraries recursively with provider-id
	// and type fields selected, optionally narrowed to one item type.
	ItemsByProvider(ctx context.Context, includeType string, extra url.Values) ([]jellyfin.Item, error)
	// ItemsByTitle runs a free-text title search restricted to one type.
	ItemsByTitle(ctx context.Context, title, includeType string, extra url.Values) ([]jellyfin.Item, error)
}

// Matcher resolves items against a catalog.
type Matcher struct {
	catalog    Searcher
	yearFilter bool
	extra      url.Values // caller-supplied query overrides, applied to every search
	log        *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithoutYearFilter disables the release-year tier.
func WithoutYearFilter() MatcherOption {
	return func(m *Matcher) {
		m.yearFilter = false
	}
}

// WithQueryOverrides merges extra parameters into every catalog query.
func WithQueryOverrides(extra url.Values) MatcherOption {
	return func(m *Matcher) {
		m.extra = extra
	}
}

// WithLogger sets the matcher logger.
func WithLogger(log *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		m.log = log.With("component", "matcher")
	}
}

// NewMatcher creates a Matcher. The year tier is enabled by default.
func NewMatcher(catalog Searcher, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		catalog:    catalog,
		yearFilter: true,
		log:        slog.Default().With("component", "matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves one source item. A transport error aborts matching for this
// item only; an exhausted search is not an error, it is TierUnmatched.
func (m *Matcher) Match(ctx context.Context, item list.SourceItem) (Result, error) {
	allowed := Mapping(item.MediaType)
	primary := PrimaryType(item.MediaType)

	if item.ExternalID != "" {
		entry, err := m.matchByExternalID(ctx, item, primary, allowed)
		if err != nil {
			return Result{Item: item}, err
		}
		if entry != nil {
			return Result{Item: item, Entry: entry, Tier: TierExternalID}, nil
		}
	}

	candidates, err := m.catalog.ItemsByTitle(ctx, item.Title, primary, m.extra)
	if err != nil {
		return Result{Item: item}, fmt.Errorf("title search: %w", err)
	}

	if m.yearFilter && item.ReleaseYear != 0 {
		want := strconv.Itoa(item.ReleaseYear)
		for i := range candidates {
			if strconv.Itoa(candidates[i].ProductionYear) == want {
				return Result{Item: item, Entry: &candidates[i], Tier: TierYear}, nil
			}
		}
	}

	wantTitle := normalizeTitle(item.Title)
	for i := range candidates {
		if normalizeTitle(candidates[i].Name) == wantTitle {
			return Result{Item: item, Entry: &candidates[i], Tier: TierTitle}, nil
		}
	}

	if len(candidates) == 1 {
		return Result{Item: item, Entry: &candidates[0], Tier: TierSoleCandidate}, nil
	}

	m.logNearest(item, candidates)
	return Result{Item: item, Tier: TierUnmatched}, nil
}

// matchByExternalID scans a recursive provider-id query for the first entry
// whose external id matches and whose type is acceptable. A provider-id hit
// with a disallowed type does not end the scan; the correct-typed entry may
// appear later in the same result set.
func (m *Matcher) matchByExternalID(ctx context.Context, item list.SourceItem, primary string, allowed []string) (*jellyfin.Item, error) {
	extra := m.extra
	var includeType string
	if filterable[primary] {
		includeType = primary
	}

	results, err := m.catalog.ItemsByProvider(ctx, includeType, extra)
	if err != nil {
		return nil, fmt.Errorf("provider id search: %w", err)
	}

	for i := range results {
		if !equalID(results[i].ProviderID(providerName), item.ExternalID) {
			continue
		}
		if !typeAllowed(results[i].Type, allowed) {
			m.log.Debug("external id hit with mismatched type, continuing scan",
				"title", item.Title,
				"external_id", item.ExternalID,
				"expected_types", allowed,
				"got_type", results[i].Type)
			continue
		}
		return &results[i], nil
	}
	return nil, nil
}
