// Package traverse: unweighted shortest path.
package traverse

import "github.com/katalvlaran/propgraph/core"

// ShortestPath returns the first discovered minimum-hop path from a to b,
// inclusive of both endpoints, found by breadth-first search over
// undirected adjacency. With sorted neighbor expansion the discovered
// path is deterministic among equal-length alternatives.
//
// a == b yields [a] (when the node exists). A missing endpoint or an
// unreachable target yields ErrNoPath.
// Complexity: O(V + E).
func ShortestPath(g *core.Graph, a, b string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(a) || !g.HasNode(b) {
		return nil, ErrNoPath
	}
	if a == b {
		return []string{a}, nil
	}

	parent := map[string]string{a: ""}
	queue := []string{a}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range sortedIDs(neighborSet(g, cur, o.EdgeType)) {
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = cur
			if nbr == b {
				return buildPath(parent, b), nil
			}
			queue = append(queue, nbr)
		}
	}

	return nil, ErrNoPath
}

// buildPath walks parent links back from dest and reverses in place.
func buildPath(parent map[string]string, dest string) []string {
	var path []string
	for cur := dest; cur != ""; cur = parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
