package domain

import (
	"slices"
)

// DependencyGraph is the include graph between sources.
type DependencyGraph struct {
	edges map[SourceID][]SourceID
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[SourceID][]SourceID),
	}
}

// GraphFromDependencies builds a graph from a list of include edges.
func GraphFromDependencies(deps []SourceDependency) *DependencyGraph {
	g := NewDependencyGraph()
	for _, d := range deps {
		g.AddEdge(d.SourceID, d.DependencySourceID)
	}
	return g
}

// AddEdge records that from includes to. Duplicate edges are ignored.
func (g *DependencyGraph) AddEdge(from, to SourceID) {
	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Dependencies returns the direct includes of id.
func (g *DependencyGraph) Dependencies(id SourceID) []SourceID {
	return g.edges[id]
}

// Edges returns every edge, ordered by source and then by dependency.
func (g *DependencyGraph) Edges() []SourceDependency {
	var deps []SourceDependency
	for from, tos := range g.edges {
		for _, to := range tos {
			deps = append(deps, NewSourceDependency(from, to))
		}
	}
	slices.SortFunc(deps, func(a, b SourceDependency) int {
		if c := a.SourceID.Compare(b.SourceID); c != 0 {
			return c
		}
		return a.DependencySourceID.Compare(b.DependencySourceID)
	})
	return deps
}

// Closure walks the include graph exposed by next starting at start and
// returns every visited id, start included, sorted ascending.
// Include cycles are legal and visited once.
func Closure(start SourceID, next func(SourceID) ([]SourceID, error)) ([]SourceID, error) {
	visited := map[SourceID]struct{}{start: {}}
	stack := []SourceID{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deps, err := next(u)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			stack = append(stack, dep)
		}
	}

	ids := make([]SourceID, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, SourceID.Compare)
	return ids, nil
}
