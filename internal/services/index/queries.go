package index

import (
	"context"

	"github.com/Paintersrp/focusnest/internal/graph"
	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/review"
	"github.com/Paintersrp/focusnest/internal/search"
)

func (s *Service) Graph(ctx context.Context) (graph.Data, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return graph.Data{}, err
	}
	return snap.Graph.Data(), nil
}

func (s *Service) Connections(ctx context.Context, id int64) ([]int64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Graph.Neighbors(id), nil
}

func (s *Service) Orphans(ctx context.Context) ([]int64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Graph.Orphans(), nil
}

func (s *Service) Central(ctx context.Context, limit int) ([]graph.Centrality, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Graph.Central(limit), nil
}

func (s *Service) Suggest(ctx context.Context, id int64, limit int) ([]int64, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Graph.Suggest(id, limit), nil
}

// Search runs q against the snapshot's search index.
func (s *Service) Search(ctx context.Context, q search.Query) (search.Results, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return search.Results{}, err
	}
	return snap.Search.Search(q)
}

// Daily returns stale notes weighted towards well-connected ones.
func (s *Service) Daily(ctx context.Context, count int) ([]note.Note, error) {
	var out []note.Note
	err := s.withSelector(ctx, func(sel *review.Selector) {
		out = sel.Daily(count)
	})
	return out, err
}

// Random returns a single random note, or nil when none qualifies.
func (s *Service) Random(ctx context.Context, excludeRecent bool) (*note.Note, error) {
	var out *note.Note
	err := s.withSelector(ctx, func(sel *review.Selector) {
		if n, ok := sel.RandomDiscovery(excludeRecent); ok {
			out = &n
		}
	})
	return out, err
}

// Context returns notes linked to id, falling back to Daily when id has no
// links.
func (s *Service) Context(ctx context.Context, id int64, count int) ([]note.Note, error) {
	var out []note.Note
	err := s.withSelector(ctx, func(sel *review.Selector) {
		out = sel.Context(id, count)
	})
	return out, err
}

// OrphanNotes returns up to count notes without links.
func (s *Service) OrphanNotes(ctx context.Context, count int) ([]note.Note, error) {
	var out []note.Note
	err := s.withSelector(ctx, func(sel *review.Selector) {
		out = sel.Orphans(count)
	})
	return out, err
}

// withSelector holds rngMu for the duration of fn since rand.Rand is not
// safe for concurrent use.
func (s *Service) withSelector(ctx context.Context, fn func(*review.Selector)) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	fn(review.NewSelector(
		snap.Notes,
		snap.Links,
		review.WithRand(s.rng),
		review.WithNow(s.now),
		review.WithStaleAfter(s.staleAfter),
		review.WithRecentWithin(s.recentWithin),
	))
	return nil
}
