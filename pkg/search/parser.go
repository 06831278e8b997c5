package search

import (
	"strings"
)

// Filter is one extracted key:value token from the raw query.
type Filter struct {
	Key   string
	Value string
}

// ParsedQuery holds the extracted filters and the remaining clean phrase.
type ParsedQuery struct {
	Phrase  string
	Filters []Filter
}

// Filter token vocabulary. Anything else stays in the phrase.
const (
	FilterFrom    = "from"
	FilterSinceGp = "since_gp"
	FilterBefore  = "before"
	FilterAfter   = "after"
)

var filterKeys = map[string]bool{
	FilterFrom:    true,
	FilterSinceGp: true,
	FilterBefore:  true,
	FilterAfter:   true,
}

// ParseQuery extracts inline key:value tokens from the raw query string.
// Supported:
// from:<sender> -> sender prefix filter
// since_gp:<version> -> spec-version lower time bound
// before:<date> / after:<date> -> time range bounds
// <text> -> remaining text is the search phrase
//
// A token only counts when the key is known and a non-empty value follows
// the colon; malformed tokens ("before:", "x:y") are left in the phrase.
// Remaining whitespace runs collapse to single spaces.
func ParseQuery(raw string) ParsedQuery {
	parsed := ParsedQuery{}
	parts := strings.Fields(raw)
	var cleanParts []string

	for _, part := range parts {
		key, value, found := strings.Cut(part, ":")
		if found && value != "" && filterKeys[strings.ToLower(key)] {
			parsed.Filters = append(parsed.Filters, Filter{
				Key:   strings.ToLower(key),
				Value: value,
			})
			continue
		}
		cleanParts = append(cleanParts, part)
	}

	parsed.Phrase = strings.Join(cleanParts, " ")
	return parsed
}

// Get returns the value of the first filter with the given key.
func (q ParsedQuery) Get(key string) string {
	for _, f := range q.Filters {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}
