package jellyfin

// Document is a full server item record held as raw JSON fields. Updates
// must post the complete record back, so fields this client does not model
// have to survive the round trip untouched.
type Document map[string]any

// Overview returns the record's description text, or "" if unset.
func (d Document) Overview() string {
	s, _ := d["Overview"].(string)
	return s
}

// SetOverview replaces the record's description text.
func (d Document) SetOverview(text string) {
	d["Overview"] = text
}

// Tags returns the record's tag set. JSON decoding yields []any; anything
// that is not a string is dropped.
func (d Document) Tags() []string {
	raw, _ := d["Tags"].([]any)
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// SetTags replaces the record's tag set.
func (d Document) SetTags(tags []string) {
	out := make([]any, len(tags))
	for i, t := range tags {
		out[i] = t
	}
	d["Tags"] = out
}
