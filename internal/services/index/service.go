package index

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Paintersrp/focusnest/internal/graph"
	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/review"
	"github.com/Paintersrp/focusnest/internal/search"
)

// ErrClosed signals that the index service has been shut down and cannot be
// used to produce new snapshots.
var ErrClosed = errors.New("index service closed")

// ErrUnavailable indicates that no source has been configured.
var ErrUnavailable = errors.New("graph index unavailable")

// Source loads the full note and link set. store.Store satisfies it.
type Source interface {
	ListNotes(ctx context.Context) ([]note.Note, error)
	ListLinks(ctx context.Context) ([]note.Link, error)
}

// Stats captures lightweight instrumentation about the shared snapshot.
type Stats struct {
	LastRebuild time.Time
	Notes       int
	Edges       int
	Stale       bool
}

// Snapshot is an immutable view of the knowledge base taken at BuiltAt.
type Snapshot struct {
	Notes   []note.Note
	Links   []note.Link
	Titles  note.TitleIndex
	Graph   *graph.Graph
	Search  *search.Index
	BuiltAt time.Time
}

// Service owns the shared graph snapshot and rebuilds it when notes change
// or the snapshot ages past maxAge.
type Service struct {
	mu          sync.RWMutex
	source      Source
	snapshot    *Snapshot
	stale       bool
	generation  uint64
	lastRebuild time.Time
	closed      bool

	now    func() time.Time
	maxAge time.Duration

	rngMu        sync.Mutex
	rng          *rand.Rand
	staleAfter   time.Duration
	recentWithin time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithNow overrides the clock used for snapshot age and resurfacing.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxAge lets a snapshot be reused for up to d. The default of zero
// reloads on every request.
func WithMaxAge(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.maxAge = d
		}
	}
}

// WithRand fixes the random source used for resurfacing.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithResurfacing overrides the stale and recent windows.
func WithResurfacing(staleAfter, recentWithin time.Duration) Option {
	return func(s *Service) {
		s.staleAfter = staleAfter
		s.recentWithin = recentWithin
	}
}

// NewService constructs an index service backed by source.
func NewService(source Source, opts ...Option) *Service {
	s := &Service{
		source:       source,
		stale:        true,
		now:          time.Now,
		staleAfter:   review.DefaultStaleAfter,
		recentWithin: review.DefaultRecentWithin,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Snapshot returns the current snapshot, rebuilding it first when it has
// been invalidated or has aged out.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s == nil || s.source == nil {
		return nil, ErrUnavailable
	}

	s.mu.RLock()
	closed := s.closed
	snap := s.snapshot
	needsRebuild := s.stale || snap == nil || s.now().Sub(s.lastRebuild) >= s.maxAge
	s.mu.RUnlock()

	if closed {
		return nil, ErrClosed
	}
	if !needsRebuild {
		return snap, nil
	}
	return s.rebuild(ctx)
}

// Invalidate marks the snapshot stale so the next request reloads it.
func (s *Service) Invalidate() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
	s.generation++
}

// Stats returns instrumentation about the snapshot lifecycle.
func (s *Service) Stats() Stats {
	if s == nil {
		return Stats{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{LastRebuild: s.lastRebuild, Stale: s.stale}
	if s.snapshot != nil {
		stats.Notes = s.snapshot.Graph.Len()
		stats.Edges = s.snapshot.Graph.EdgeCount()
	}
	return stats
}

// Close releases the service. Subsequent calls to Snapshot return ErrClosed.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.snapshot = nil
	return nil
}

func (s *Service) rebuild(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	notes, err := s.source.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	links, err := s.source.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	snap := &Snapshot{
		Notes:   notes,
		Links:   links,
		Titles:  note.IndexTitles(notes),
		Graph:   graph.Build(notes, links),
		Search:  search.NewIndex(notes),
		BuiltAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	s.snapshot = snap
	// An Invalidate during the load means snap may predate that write.
	if s.generation == gen {
		s.stale = false
	}
	s.lastRebuild = snap.BuiltAt
	return snap, nil
}
