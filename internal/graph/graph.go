// Package graph builds an undirected snapshot of the note link graph and
// answers neighbor, orphan, centrality, and two-hop suggestion queries over
// it. Snapshots are cheap to build and are meant to be rebuilt per request.
package graph

import (
	"sort"

	"github.com/Paintersrp/focusnest/internal/note"
)

// Node is a note in the snapshot.
type Node struct {
	ID    int64
	Title string
}

// Edge is an undirected connection between two notes. Source is always the
// smaller ID.
type Edge struct {
	Source   int64
	Target   int64
	Strength int
}

type pair struct {
	a, b int64
}

func makePair(x, y int64) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// Graph is an immutable, undirected, deduplicated view over notes and links.
type Graph struct {
	nodes     map[int64]Node
	adjacency map[int64]map[int64]struct{}
	strength  map[pair]int
}

// Build constructs a snapshot from the complete note and link record sets.
//
// Links sharing an unordered pair collapse into a single edge whose strength
// is taken from the last processed record. Self-referencing links are
// skipped. Link endpoints that do not correspond to a note are added as
// untitled nodes.
func Build(notes []note.Note, links []note.Link) *Graph {
	g := &Graph{
		nodes:     make(map[int64]Node, len(notes)),
		adjacency: make(map[int64]map[int64]struct{}, len(notes)),
		strength:  make(map[pair]int, len(links)),
	}

	for _, n := range notes {
		g.addNode(n.ID, n.Title)
	}

	for _, l := range links {
		if l.SelfReferencing() {
			continue
		}
		g.ensureNode(l.FromNoteID)
		g.ensureNode(l.ToNoteID)

		g.adjacency[l.FromNoteID][l.ToNoteID] = struct{}{}
		g.adjacency[l.ToNoteID][l.FromNoteID] = struct{}{}
		g.strength[makePair(l.FromNoteID, l.ToNoteID)] = l.Strength
	}

	return g
}

func (g *Graph) addNode(id int64, title string) {
	g.nodes[id] = Node{ID: id, Title: title}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]struct{})
	}
}

func (g *Graph) ensureNode(id int64) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.addNode(id, "")
}

// Len returns the number of nodes in the snapshot.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges in the snapshot.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.strength)
}

// Has reports whether the note is present in the snapshot.
func (g *Graph) Has(id int64) bool {
	if g == nil {
		return false
	}
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for the provided ID.
func (g *Graph) Node(id int64) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	n, ok := g.nodes[id]
	return n, ok
}

// Degree returns the number of distinct notes connected to id.
func (g *Graph) Degree(id int64) int {
	if g == nil {
		return 0
	}
	return len(g.adjacency[id])
}

// Strength returns the collapsed strength of the edge between x and y.
func (g *Graph) Strength(x, y int64) (int, bool) {
	if g == nil {
		return 0, false
	}
	s, ok := g.strength[makePair(x, y)]
	return s, ok
}

// Nodes returns every node ordered by ID.
func (g *Graph) Nodes() []Node {
	if g == nil {
		return []Node{}
	}
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns every edge ordered by source then target.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return []Edge{}
	}
	out := make([]Edge, 0, len(g.strength))
	for p, s := range g.strength {
		out = append(out, Edge{Source: p.a, Target: p.b, Strength: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
