// Package analytics: connectivity partitioning.
package analytics

import (
	"errors"
	"sort"

	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/traverse"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("analytics: graph is nil")

// ConnectedComponents partitions every node id into disjoint groups, each
// internally reachable over undirected adjacency, computed by repeated
// BFS from unvisited nodes. Discovery order is sorted node id order, so
// the partition is deterministic; each group is internally sorted.
// Complexity: O(V + E) plus sorting.
func ConnectedComponents(g *core.Graph, opts ...traverse.Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]struct{})
	var components [][]string
	for _, id := range g.NodeIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		visits, err := traverse.BFS(g, id, opts...)
		if err != nil {
			return nil, err
		}
		component := make([]string, 0, len(visits))
		for _, v := range visits {
			seen[v.ID] = struct{}{}
			component = append(component, v.ID)
		}
		sort.Strings(component)
		components = append(components, component)
	}

	return components, nil
}

// DetectCommunities numbers the first maxCommunities connected components
// (in discovery order) and assigns every member its component's number;
// nodes in components beyond the cap are left out of the map entirely.
//
// This is a literal grouping by connectivity, not a
// modularity-based clustering.
func DetectCommunities(g *core.Graph, maxCommunities int, opts ...traverse.Option) (map[string]int, error) {
	components, err := ConnectedComponents(g, opts...)
	if err != nil {
		return nil, err
	}

	assignment := make(map[string]int)
	for i, component := range components {
		if i >= maxCommunities {
			break
		}
		for _, id := range component {
			assignment[id] = i
		}
	}

	return assignment, nil
}
