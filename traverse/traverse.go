// Package traverse: neighbor primitives shared by every walk.
package traverse

import (
	"sort"

	"github.com/katalvlaran/propgraph/core"
)

// neighborSet returns the distinct ids adjacent to id, honoring the
// edge-type filter. Direction is ignored: the neighbor
// across an edge is its other endpoint. A self-loop contributes the node
// itself. Unknown ids yield an empty set.
func neighborSet(g *core.Graph, id string, edgeType string) map[string]struct{} {
	incident := g.IncidentEdges(id)
	out := make(map[string]struct{}, len(incident))
	for _, e := range incident {
		if edgeType != "" && e.Type != edgeType {
			continue
		}
		other := e.To
		if e.From != id {
			other = e.From
		}
		out[other] = struct{}{}
	}

	return out
}

// sortedIDs flattens a set into a sorted slice.
func sortedIDs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the ids adjacent to id, deduplicated and sorted,
// walking incident edges in both directions regardless of storage
// direction. A missing id yields an empty result, never an error.
// Complexity: O(deg(v) log deg(v)).
func Neighbors(g *core.Graph, id string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	return sortedIDs(neighborSet(g, id, o.EdgeType)), nil
}

// Degree returns the number of distinct neighbors of id (a self-loop
// counts the node itself once). A missing id yields 0.
func Degree(g *core.Graph, id string, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := apply(opts)
	if err != nil {
		return 0, err
	}

	return len(neighborSet(g, id, o.EdgeType)), nil
}

// CommonNeighbors returns the intersection of both nodes' neighbor sets,
// sorted. Empty if either node is missing.
// Complexity: O(deg(a) + deg(b)).
func CommonNeighbors(g *core.Graph, a, b string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	na := neighborSet(g, a, o.EdgeType)
	nb := neighborSet(g, b, o.EdgeType)
	common := make(map[string]struct{})
	for id := range na {
		if _, ok := nb[id]; ok {
			common[id] = struct{}{}
		}
	}

	return sortedIDs(common), nil
}
