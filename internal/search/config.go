package search

import "github.com/Paintersrp/focusnest/internal/note"

// MinTermLength is the shortest accepted query term.
const MinTermLength = 2

// DefaultLimit caps results when a query does not set one.
const DefaultLimit = 20

// Query represents a search request against the index.
type Query struct {
	// Term is matched case-insensitively as a substring of note titles and
	// content.
	Term string
	// Limit caps the number of returned results. Zero selects DefaultLimit.
	Limit int
}

// Result captures a note matched by a query.
type Result struct {
	Note      note.Note `json:"note"`
	Snippet   string    `json:"snippet"`
	MatchFrom string    `json:"match_from"`
}

// Results is a page of matches alongside the untruncated match count.
type Results struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
}

// Notes returns the matched notes in result order.
func (r Results) Notes() []note.Note {
	out := make([]note.Note, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, res.Note)
	}
	return out
}
