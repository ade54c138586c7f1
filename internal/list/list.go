// Package list defines source media lists and their on-disk YAML format.
package list

import "fmt"

// SourceItem is a single entry from an imported media list. It is produced
// by an external importer and consumed read-only.
type SourceItem struct {
	Title       string `yaml:"title"`
	ReleaseYear int    `yaml:"release_year,omitempty"` // 0 means unknown
	ExternalID  string `yaml:"imdb_id,omitempty"`
	MediaType   string `yaml:"media_type"`
}

// String renders the item for log lines.
func (s SourceItem) String() string {
	switch {
	case s.ReleaseYear != 0 && s.ExternalID != "":
		return fmt.Sprintf("%s (%d, %s)", s.Title, s.ReleaseYear, s.ExternalID)
	case s.ReleaseYear != 0:
		return fmt.Sprintf("%s (%d)", s.Title, s.ReleaseYear)
	case s.ExternalID != "":
		return fmt.Sprintf("%s (%s)", s.Title, s.ExternalID)
	default:
		return s.Title
	}
}

// List is a named source list with a stable identifier. The ID outlives
// display-name changes and is the key behind collection identity.
type List struct {
	ID          string       `yaml:"list_id"`
	Name        string       `yaml:"list_name"`
	Description string       `yaml:"description,omitempty"`
	Source      string       `yaml:"source,omitempty"` // originating importer label
	Items       []SourceItem `yaml:"items"`
}
