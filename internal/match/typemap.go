package match

// typeMap translates source media-type tags (IMDB vocabulary) into the
// ordered list of acceptable server item types. The first entry narrows
// search queries; the full list validates a candidate's type.
var typeMap = map[string][]string{
	"movie":        {"Movie"},
	"short":        {"Movie"},
	"tvEpisode":    {"TvProgram", "Episode"},
	"tvSeries":     {"Program", "Series"},
	"tvShort":      {"TvProgram", "Episode", "Program"},
	"tvMiniSeries": {"Program", "Series"},
	"tvMovie":      {"Movie", "TvProgram", "Episode"},
	"video":        {"Movie", "TvProgram", "Episode", "Series"},
	"show":         {"Program", "Series"},
}

// filterable is the set of primary types the server accepts as an
// IncludeItemTypes filter on provider-id searches.
var filterable = map[string]bool{
	"Movie":   true,
	"Series":  true,
	"Program": true,
}

// Mapping returns the acceptable server types for a source media type.
// Unknown media types map to themselves so a list with server-native type
// tags still works.
func Mapping(mediaType string) []string {
	if m, ok := typeMap[mediaType]; ok {
		return m
	}
	return []string{mediaType}
}

// PrimaryType returns the type used to narrow search queries.
func PrimaryType(mediaType string) string {
	m := Mapping(mediaType)
	if len(m) == 0 {
		return mediaType
	}
	return m[0]
}

// typeAllowed reports whether a candidate's type satisfies the mapping.
func typeAllowed(candidateType string, allowed []string) bool {
	for _, t := range allowed {
		if candidateType == t {
			return true
		}
	}
	return false
}
