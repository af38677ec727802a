// Package review selects notes worth revisiting. Selection favors stale,
// well-connected notes and is intentionally randomized; the random source and
// clock are injectable so results can be reproduced.
package review

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Paintersrp/focusnest/internal/note"
)

const (
	// DefaultStaleAfter is the age a note must reach before it becomes a
	// daily suggestion candidate.
	DefaultStaleAfter = 7 * 24 * time.Hour
	// DefaultRecentWithin is the window of recently updated notes skipped
	// by random discovery.
	DefaultRecentWithin = 3 * 24 * time.Hour
)

// Selector picks notes to resurface from a fully loaded note and link set.
type Selector struct {
	notes []note.Note
	links []note.Link

	rng          *rand.Rand
	now          func() time.Time
	staleAfter   time.Duration
	recentWithin time.Duration
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds a dedicated random source.
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNow overrides the clock used for staleness checks.
func WithNow(now func() time.Time) Option {
	return func(s *Selector) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStaleAfter overrides DefaultStaleAfter.
func WithStaleAfter(d time.Duration) Option {
	return func(s *Selector) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithRecentWithin overrides DefaultRecentWithin.
func WithRecentWithin(d time.Duration) Option {
	return func(s *Selector) {
		if d > 0 {
			s.recentWithin = d
		}
	}
}

// NewSelector builds a selector over the provided records. Without WithRand
// or WithSeed the selector draws from a time-seeded source.
func NewSelector(notes []note.Note, links []note.Link, opts ...Option) *Selector {
	s := &Selector{
		notes:        notes,
		links:        links,
		now:          time.Now,
		staleAfter:   DefaultStaleAfter,
		recentWithin: DefaultRecentWithin,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Daily returns up to count stale notes. When there are more candidates than
// requested, each candidate enters a sampling pool once per incident link
// (at least once) and distinct notes are drawn from that pool, so
// well-connected notes are proportionally more likely to surface.
func (s *Selector) Daily(count int) []note.Note {
	if count <= 0 {
		return []note.Note{}
	}

	cutoff := s.now().Add(-s.staleAfter)
	candidates := make([]note.Note, 0)
	for _, n := range s.notes {
		if n.UpdatedAt.Before(cutoff) {
			candidates = append(candidates, n)
		}
	}

	if len(candidates) <= count {
		return candidates
	}

	counts := note.LinkCounts(s.links)
	pool := make([]int, 0, len(candidates))
	for i, n := range candidates {
		weight := max(1, counts[n.ID])
		for k := 0; k < weight; k++ {
			pool = append(pool, i)
		}
	}

	chosen := make(map[int]struct{}, count)
	selected := make([]note.Note, 0, count)
	for i := 0; i < len(pool) && len(selected) < count; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]

		pick := pool[i]
		if _, dup := chosen[pick]; dup {
			continue
		}
		chosen[pick] = struct{}{}
		selected = append(selected, candidates[pick])
	}
	return selected
}

// RandomDiscovery picks a single note uniformly at random. When
// excludeRecent is set, notes updated within the recent window are skipped.
// The boolean is false when no note qualifies.
func (s *Selector) RandomDiscovery(excludeRecent bool) (note.Note, bool) {
	cutoff := s.now().Add(-s.recentWithin)
	pool := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if excludeRecent && !n.UpdatedAt.Before(cutoff) {
			continue
		}
		pool = append(pool, n)
	}

	if len(pool) == 0 {
		return note.Note{}, false
	}
	return pool[s.rng.Intn(len(pool))], true
}

// Context returns notes linked to noteID in either direction, ordered by ID
// and truncated to count. A known note without any links falls back to
// Daily; an unknown note yields nothing.
func (s *Selector) Context(noteID int64, count int) []note.Note {
	byID := note.ByID(s.notes)
	if _, ok := byID[noteID]; !ok {
		return []note.Note{}
	}

	connected := make(map[int64]struct{})
	for _, l := range s.links {
		if l.SelfReferencing() {
			continue
		}
		switch noteID {
		case l.FromNoteID:
			connected[l.ToNoteID] = struct{}{}
		case l.ToNoteID:
			connected[l.FromNoteID] = struct{}{}
		}
	}

	if len(connected) == 0 {
		return s.Daily(count)
	}
	if count <= 0 {
		return []note.Note{}
	}

	ids := make([]int64, 0, len(connected))
	for id := range connected {
		ids = append(ids, id)
	}
	note.SortIDs(ids)

	out := make([]note.Note, 0, min(count, len(ids)))
	for _, id := range ids {
		n, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, n)
		if len(out) == count {
			break
		}
	}
	return out
}

// Orphans returns up to count notes that have no links in either direction.
func (s *Selector) Orphans(count int) []note.Note {
	if count <= 0 {
		return []note.Note{}
	}

	counts := note.LinkCounts(s.links)
	out := make([]note.Note, 0, count)
	for _, n := range s.notes {
		if counts[n.ID] > 0 {
			continue
		}
		out = append(out, n)
		if len(out) == count {
			break
		}
	}
	return out
}

// Bucket labels how long a note has gone untouched.
type Bucket struct {
	Name  string
	After time.Duration
}

// DefaultBuckets returns the default staleness labels.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Name: "daily", After: 24 * time.Hour},
		{Name: "every-3-days", After: 72 * time.Hour},
		{Name: "weekly", After: 7 * 24 * time.Hour},
		{Name: "biweekly", After: 14 * 24 * time.Hour},
		{Name: "monthly", After: 30 * 24 * time.Hour},
	}
}

// BucketFor returns the label of the largest bucket the age has reached, or
// "fresh" when it has reached none.
func BucketFor(age time.Duration, buckets []Bucket) string {
	if len(buckets) == 0 {
		buckets = DefaultBuckets()
	}
	sorted := append([]Bucket(nil), buckets...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After < sorted[j].After
	})

	matched := "fresh"
	for _, bucket := range sorted {
		if age >= bucket.After {
			matched = bucket.Name
		}
	}
	return matched
}

// Age returns how long ago the note was last updated.
func (s *Selector) Age(n note.Note) time.Duration {
	return s.now().Sub(n.UpdatedAt)
}
