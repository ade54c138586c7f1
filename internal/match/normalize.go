package match

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"

	"listsync/internal/jellyfin"
	"listsync/internal/list"
)

var foldCaser = cases.Fold()

// normalizeTitle prepares a title for equality comparison: trimmed and
// Unicode case-folded, so "The Matrix " and "the matrix" compare equal.
func normalizeTitle(s string) string {
	return strings.TrimSpace(foldCaser.String(s))
}

// equalID compares external ids case-insensitively. Provider ids on the
// server occasionally differ in case from the source catalog.
func equalID(a, b string) bool {
	return a != "" && strings.EqualFold(a, b)
}

// logNearest reports the closest title candidate for an unmatched item.
// Diagnostic only: similarity never changes the match outcome, it just makes
// near misses visible in the log.
func (m *Matcher) logNearest(item list.SourceItem, candidates []jellyfin.Item) {
	if len(candidates) == 0 {
		m.log.Debug("no candidates for item", "item", item.String())
		return
	}

	best := -1
	bestScore := float32(0)
	want := normalizeTitle(item.Title)
	for i := range candidates {
		score := edlib.JaroWinklerSimilarity(want, normalizeTitle(candidates[i].Name))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best >= 0 {
		m.log.Debug("unmatched, nearest candidate",
			"item", item.String(),
			"candidate", candidates[best].Name,
			"similarity", bestScore)
	}
}
