// Package filter provides read-only projections over the entry collection.
// Filtering never mutates entries; it returns a new slice in the original
// insertion order.
package filter

import (
	"strings"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

// Filter represents projection criteria for work-log entries.
// All fields are optional - empty values match all entries.
type Filter struct {
	Person  string     // Exact person match (case-insensitive)
	Date    entry.Date // Exact calendar date match
	Keyword string     // Case-insensitive substring search in descriptions
}

// New creates a Filter with the given criteria.
func New(person string, date entry.Date, keyword string) *Filter {
	return &Filter{Person: person, Date: date, Keyword: keyword}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f.Person == "" && f.Date.IsZero() && f.Keyword == ""
}

// MatchesPerson returns true if the entry's person matches the filter
// (case-insensitive). An empty person filter matches all entries.
func (f *Filter) MatchesPerson(e entry.Entry) bool {
	if f.Person == "" {
		return true
	}
	return strings.EqualFold(e.Person, f.Person)
}

// MatchesDate returns true if the entry falls on the filter date.
// An unset date filter matches all entries.
func (f *Filter) MatchesDate(e entry.Entry) bool {
	if f.Date.IsZero() {
		return true
	}
	return e.Date == f.Date
}

// MatchesKeyword returns true if the keyword appears in the entry's
// description (case-insensitive). An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Keyword))
}

// Matches returns true if the entry satisfies all filter criteria.
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesPerson(e) && f.MatchesDate(e) && f.MatchesKeyword(e)
}

// Apply returns a new slice containing only entries that match the filter,
// preserving insertion order. If the filter is nil or empty, all entries
// are returned.
func Apply(entries []entry.Entry, f *Filter) []entry.Entry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
