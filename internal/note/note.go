// Package note defines the note, link, and tag records shared by the store,
// the graph engine, and the resurfacing selector.
package note

import (
	"sort"
	"strings"
	"time"
)

// DefaultStrength is the weight assigned to links created from wiki-link
// markup when no explicit strength is provided.
const DefaultStrength = 1

// Note is a titled text document. Titles are unique and act as the
// resolution key for wiki-links.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Link is a directed, weighted relation from one note to another.
type Link struct {
	ID         int64     `json:"id"`
	FromNoteID int64     `json:"from_note_id"`
	ToNoteID   int64     `json:"to_note_id"`
	Strength   int       `json:"strength"`
	CreatedAt  time.Time `json:"created_at"`
}

// SelfReferencing reports whether the link points back at its source note.
func (l Link) SelfReferencing() bool {
	return l.FromNoteID == l.ToNoteID
}

// Touches reports whether the link has the provided note on either end.
func (l Link) Touches(id int64) bool {
	return l.FromNoteID == id || l.ToNoteID == id
}

// Tag is a free-form label attached to a note.
type Tag struct {
	ID     int64  `json:"id"`
	NoteID int64  `json:"note_id"`
	Name   string `json:"tag_name"`
}

// TitleIndex maps exact note titles to note IDs.
type TitleIndex map[string]int64

// IndexTitles builds a title lookup for the provided notes. Titles are
// expected to be unique; when they are not, the last note wins.
func IndexTitles(notes []Note) TitleIndex {
	idx := make(TitleIndex, len(notes))
	for _, n := range notes {
		idx[n.Title] = n.ID
	}
	return idx
}

// Lookup resolves a title after trimming surrounding whitespace. Blank
// titles never resolve.
func (idx TitleIndex) Lookup(title string) (int64, bool) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return 0, false
	}
	id, ok := idx[trimmed]
	return id, ok
}

// LinkCounts returns the number of outgoing plus incoming links per note ID.
// Self-referencing links are not counted.
func LinkCounts(links []Link) map[int64]int {
	counts := make(map[int64]int, len(links))
	for _, l := range links {
		if l.SelfReferencing() {
			continue
		}
		counts[l.FromNoteID]++
		counts[l.ToNoteID]++
	}
	return counts
}

// ByID returns a lookup of notes keyed by their ID.
func ByID(notes []Note) map[int64]Note {
	out := make(map[int64]Note, len(notes))
	for _, n := range notes {
		out[n.ID] = n
	}
	return out
}

// SortIDs sorts note IDs in ascending order in place and returns the slice.
func SortIDs(ids []int64) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
