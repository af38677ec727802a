package graph

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/Paintersrp/focusnest/internal/note"
)

func sampleNotes(ids ...int64) []note.Note {
	notes := make([]note.Note, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, note.Note{ID: id, Title: titleFor(id)})
	}
	return notes
}

func titleFor(id int64) string {
	return string(rune('A' + id - 1))
}

func link(from, to int64, strength int) note.Link {
	return note.Link{FromNoteID: from, ToNoteID: to, Strength: strength}
}

func TestBuildIsDeterministicAcrossInputOrder(t *testing.T) {
	t.Parallel()

	notes := sampleNotes(1, 2, 3, 4, 5)
	links := []note.Link{link(1, 2, 1), link(2, 3, 1), link(4, 1, 2), link(3, 5, 1)}

	first := Build(notes, links)

	shuffled := append([]note.Link(nil), links...)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	shuffledNotes := append([]note.Note(nil), notes...)
	rng.Shuffle(len(shuffledNotes), func(i, j int) { shuffledNotes[i], shuffledNotes[j] = shuffledNotes[j], shuffledNotes[i] })

	second := Build(shuffledNotes, shuffled)

	if !reflect.DeepEqual(first.Nodes(), second.Nodes()) {
		t.Fatalf("node sets differ: %v vs %v", first.Nodes(), second.Nodes())
	}
	if !reflect.DeepEqual(first.Edges(), second.Edges()) {
		t.Fatalf("edge sets differ: %v vs %v", first.Edges(), second.Edges())
	}
}

func TestBuildCollapsesPairsWithLastStrength(t *testing.T) {
	t.Parallel()

	g := Build(sampleNotes(1, 2), []note.Link{link(1, 2, 1), link(2, 1, 4), link(1, 2, 3)})

	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("expected a single collapsed edge, got %d", got)
	}
	strength, ok := g.Strength(2, 1)
	if !ok || strength != 3 {
		t.Fatalf("expected last processed strength 3, got %d (ok=%v)", strength, ok)
	}
}

func TestBuildSkipsSelfLinks(t *testing.T) {
	t.Parallel()

	g := Build(sampleNotes(1, 2), []note.Link{link(1, 1, 1), link(2, 2, 5)})

	if got := g.EdgeCount(); got != 0 {
		t.Fatalf("expected self links to be skipped, got %d edges", got)
	}
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			t.Fatalf("self loop present in snapshot: %+v", e)
		}
	}
	if got := g.Orphans(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("expected both notes to be orphans, got %v", got)
	}
}

func TestBuildAddsUnknownEndpoints(t *testing.T) {
	t.Parallel()

	g := Build(sampleNotes(1), []note.Link{link(1, 99, 1)})

	if !g.Has(99) {
		t.Fatalf("expected unknown endpoint to be added as a node")
	}
	data := g.Data()
	if data.Nodes[1].Title != "Note 99" {
		t.Fatalf("expected placeholder title, got %q", data.Nodes[1].Title)
	}
}

func TestNeighborsSymmetricAndTotal(t *testing.T) {
	t.Parallel()

	g := Build(sampleNotes(1, 2, 3, 4), []note.Link{link(1, 2, 1), link(3, 1, 1), link(2, 3, 1)})

	for _, n := range g.Nodes() {
		for _, other := range g.Neighbors(n.ID) {
			found := false
			for _, back := range g.Neighbors(other) {
				if back == n.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("%d lists %d as neighbor but not vice versa", n.ID, other)
			}
		}
	}

	if got := g.Neighbors(1); !reflect.DeepEqual(got, []int64{2, 3}) {
		t.Fatalf("unexpected neighbors of 1: %v", got)
	}
	if got := g.Neighbors(42); len(got) != 0 {
		t.Fatalf("expected unknown note to have no neighbors, got %v", got)
	}
}

func TestOrphansMatchUnlinkedNotes(t *testing.T) {
	t.Parallel()

	notes := sampleNotes(1, 2, 3, 4, 5)
	links := []note.Link{link(1, 2, 1), link(4, 2, 1)}
	g := Build(notes, links)

	want := make([]int64, 0)
	for _, n := range notes {
		linked := false
		for _, l := range links {
			if l.Touches(n.ID) {
				linked = true
			}
		}
		if !linked {
			want = append(want, n.ID)
		}
	}

	if got := g.Orphans(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected orphans: got %v want %v", got, want)
	}
}

func TestCentral(t *testing.T) {
	t.Parallel()

	t.Run("zero limit", func(t *testing.T) {
		g := Build(sampleNotes(1, 2), []note.Link{link(1, 2, 1)})
		if got := g.Central(0); len(got) != 0 {
			t.Fatalf("expected empty ranking, got %v", got)
		}
		if got := g.Central(-3); len(got) != 0 {
			t.Fatalf("expected empty ranking for negative limit, got %v", got)
		}
	})

	t.Run("single node", func(t *testing.T) {
		g := Build(sampleNotes(1), nil)
		got := g.Central(5)
		if len(got) != 1 || got[0].ID != 1 || got[0].Score != 0 {
			t.Fatalf("expected single zero score, got %v", got)
		}
	})

	t.Run("ranking and ties", func(t *testing.T) {
		// 1 is the hub; 2 and 3 tie, 4 and 5 tie.
		g := Build(sampleNotes(1, 2, 3, 4, 5), []note.Link{
			link(1, 2, 1), link(1, 3, 1), link(1, 4, 1), link(1, 5, 1), link(3, 2, 1),
		})
		got := g.Central(10)
		want := []Centrality{
			{ID: 1, Score: 1},
			{ID: 2, Score: 0.5},
			{ID: 3, Score: 0.5},
			{ID: 4, Score: 0.25},
			{ID: 5, Score: 0.25},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected ranking: got %v want %v", got, want)
		}
		if got := g.Central(2); len(got) != 2 || got[1].ID != 2 {
			t.Fatalf("expected truncated ranking, got %v", got)
		}
	})
}

func TestSuggestExcludesSelfAndNeighbors(t *testing.T) {
	t.Parallel()

	// 1-2, 1-3, 2-4, 3-4, 3-5, 2-3, 5-6
	g := Build(sampleNotes(1, 2, 3, 4, 5, 6), []note.Link{
		link(1, 2, 1), link(1, 3, 1), link(2, 4, 1), link(3, 4, 1), link(3, 5, 1), link(2, 3, 1), link(5, 6, 1),
	})

	got := g.Suggest(1, 10)
	if !reflect.DeepEqual(got, []int64{4, 5}) {
		t.Fatalf("unexpected suggestions: %v", got)
	}

	direct := map[int64]bool{1: true}
	for _, n := range g.Neighbors(1) {
		direct[n] = true
	}
	for _, s := range got {
		if direct[s] {
			t.Fatalf("suggestion %d is the note itself or a direct neighbor", s)
		}
	}

	if got := g.Suggest(1, 1); !reflect.DeepEqual(got, []int64{4}) {
		t.Fatalf("expected truncation to lowest id, got %v", got)
	}
	if got := g.Suggest(77, 5); len(got) != 0 {
		t.Fatalf("expected unknown note to yield nothing, got %v", got)
	}
	if got := g.Suggest(1, 0); len(got) != 0 {
		t.Fatalf("expected zero limit to yield nothing, got %v", got)
	}
}

func TestDataExport(t *testing.T) {
	t.Parallel()

	g := Build(sampleNotes(1, 2, 3), []note.Link{link(2, 1, 2)})
	data := g.Data()

	wantNodes := []NodeData{
		{ID: 1, Title: "A", Connections: 1},
		{ID: 2, Title: "B", Connections: 1},
		{ID: 3, Title: "C", Connections: 0},
	}
	if !reflect.DeepEqual(data.Nodes, wantNodes) {
		t.Fatalf("unexpected nodes: %+v", data.Nodes)
	}
	if !reflect.DeepEqual(data.Links, []LinkData{{Source: 1, Target: 2, Strength: 2}}) {
		t.Fatalf("unexpected links: %+v", data.Links)
	}
}

func TestNilGraphIsTotal(t *testing.T) {
	t.Parallel()

	var g *Graph
	if g.Len() != 0 || len(g.Neighbors(1)) != 0 || len(g.Orphans()) != 0 ||
		len(g.Central(3)) != 0 || len(g.Suggest(1, 3)) != 0 {
		t.Fatalf("expected nil graph queries to return empty results")
	}
}
