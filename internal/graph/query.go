package graph

import (
	"fmt"
	"sort"

	"github.com/Paintersrp/focusnest/internal/note"
)

// Centrality pairs a note with its degree centrality score.
type Centrality struct {
	ID    int64   `json:"id"`
	Score float64 `json:"centrality"`
}

// NodeData is the visualization form of a node.
type NodeData struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Connections int    `json:"connections"`
}

// LinkData is the visualization form of an edge.
type LinkData struct {
	Source   int64 `json:"source"`
	Target   int64 `json:"target"`
	Strength int   `json:"strength"`
}

// Data is the full snapshot export consumed by graph views.
type Data struct {
	Nodes []NodeData `json:"nodes"`
	Links []LinkData `json:"links"`
}

// Neighbors returns the notes directly connected to id in ascending order.
// Unknown IDs yield an empty list.
func (g *Graph) Neighbors(id int64) []int64 {
	if !g.Has(id) {
		return []int64{}
	}
	out := make([]int64, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		out = append(out, n)
	}
	return note.SortIDs(out)
}

// Orphans returns every note without an incident edge, in ascending order.
func (g *Graph) Orphans() []int64 {
	if g == nil {
		return []int64{}
	}
	out := make([]int64, 0)
	for id, adj := range g.adjacency {
		if len(adj) == 0 {
			out = append(out, id)
		}
	}
	return note.SortIDs(out)
}

// Central ranks notes by degree centrality, the node degree divided by the
// number of other nodes. Scores are sorted descending with ties broken by
// ascending ID, then truncated to limit.
func (g *Graph) Central(limit int) []Centrality {
	if limit <= 0 || g.Len() == 0 {
		return []Centrality{}
	}

	denom := float64(g.Len() - 1)
	scores := make([]Centrality, 0, g.Len())
	for id, adj := range g.adjacency {
		score := 0.0
		if denom > 0 {
			score = float64(len(adj)) / denom
		}
		scores = append(scores, Centrality{ID: id, Score: score})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ID < scores[j].ID
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// Suggest proposes notes two hops away from id that are not already directly
// connected to it. Candidates are deduplicated, ordered by ascending ID, and
// truncated to limit.
func (g *Graph) Suggest(id int64, limit int) []int64 {
	if limit <= 0 || !g.Has(id) {
		return []int64{}
	}

	direct := g.adjacency[id]
	candidates := make(map[int64]struct{})
	for neighbor := range direct {
		for second := range g.adjacency[neighbor] {
			if second == id {
				continue
			}
			if _, ok := direct[second]; ok {
				continue
			}
			candidates[second] = struct{}{}
		}
	}

	out := make([]int64, 0, len(candidates))
	for c := range candidates {
		out = append(out, c)
	}
	note.SortIDs(out)

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Data exports the snapshot for visualization. Nodes without a title, which
// only occur for link endpoints missing from the note set, are labelled by ID.
func (g *Graph) Data() Data {
	nodes := g.Nodes()
	data := Data{
		Nodes: make([]NodeData, 0, len(nodes)),
		Links: make([]LinkData, 0, g.EdgeCount()),
	}

	for _, n := range nodes {
		title := n.Title
		if title == "" {
			title = fmt.Sprintf("Note %d", n.ID)
		}
		data.Nodes = append(data.Nodes, NodeData{
			ID:          n.ID,
			Title:       title,
			Connections: g.Degree(n.ID),
		})
	}

	for _, e := range g.Edges() {
		data.Links = append(data.Links, LinkData{Source: e.Source, Target: e.Target, Strength: e.Strength})
	}
	return data
}
