package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/focusnest/internal/note"
)

// ErrQueryTooShort is returned when the trimmed term is shorter than
// MinTermLength.
var ErrQueryTooShort = fmt.Errorf("search: query must be at least %d characters", MinTermLength)

// ErrEmptyQuery is returned when no term is provided.
var ErrEmptyQuery = errors.New("search: query is required")

// Index stores searchable representations of notes.
type Index struct {
	docs []document
}

type document struct {
	note         note.Note
	loweredTitle string
	loweredBody  string
}

// NewIndex builds an index over the provided notes.
func NewIndex(notes []note.Note) *Index {
	idx := &Index{docs: make([]document, 0, len(notes))}
	for _, n := range notes {
		idx.docs = append(idx.docs, document{
			note:         n,
			loweredTitle: strings.ToLower(n.Title),
			loweredBody:  strings.ToLower(n.Content),
		})
	}

	sort.SliceStable(idx.docs, func(i, j int) bool {
		a, b := idx.docs[i].note, idx.docs[j].note
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
	return idx
}

// Len returns the number of indexed notes.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.docs)
}

// Search evaluates the query against note titles and then note content.
// Matches are ordered from most to least recently updated.
func (idx *Index) Search(q Query) (Results, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return Results{}, ErrEmptyQuery
	}
	if utf8.RuneCountInString(term) < MinTermLength {
		return Results{}, ErrQueryTooShort
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	lowered := strings.ToLower(term)
	out := Results{Results: make([]Result, 0)}
	if idx == nil {
		return out, nil
	}

	for _, doc := range idx.docs {
		res, ok := doc.match(lowered)
		if !ok {
			continue
		}
		out.Total++
		if len(out.Results) < limit {
			out.Results = append(out.Results, res)
		}
	}
	return out, nil
}

func (d document) match(term string) (Result, bool) {
	if strings.Contains(d.loweredTitle, term) {
		return Result{Note: d.note, Snippet: d.note.Title, MatchFrom: "title"}, true
	}

	i := strings.Index(d.loweredBody, term)
	if i == -1 {
		return Result{}, false
	}

	// Lowercasing can change byte widths, so map the offset back through
	// rune counts before slicing the original content.
	runeStart := utf8.RuneCountInString(d.loweredBody[:i])
	return Result{
		Note:      d.note,
		Snippet:   bodySnippet(d.note.Content, runeStart, utf8.RuneCountInString(term)),
		MatchFrom: "content",
	}, true
}

func bodySnippet(body string, index, termLen int) string {
	if termLen <= 0 {
		termLen = 1
	}

	runes := []rune(body)
	start := index
	end := index + termLen
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	const window = 40
	snippetStart := max(0, start-window)
	snippetEnd := min(len(runes), end+window)

	snippet := string(runes[snippetStart:snippetEnd])
	snippet = strings.TrimSpace(snippet)
	if snippetStart > 0 {
		snippet = "…" + snippet
	}
	if snippetEnd < len(runes) {
		snippet = snippet + "…"
	}
	return snippet
}
