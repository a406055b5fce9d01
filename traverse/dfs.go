// Package traverse: depth-first search.
package traverse

import "github.com/katalvlaran/propgraph/core"

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited map[string]struct{}
	out     []Visit
}

// DFS runs depth-first search from start in pre-order: each node is
// recorded when first discovered, then its unvisited neighbors are
// explored in sorted id order. The same contract as BFS applies: each
// node at most once, start at depth 0, nodes strictly beyond MaxDepth
// excluded, missing start id yields an empty result.
// Complexity: O(V + E) plus sorting of each neighbor set.
func DFS(g *core.Graph, start string, opts ...Option) ([]Visit, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, nil
	}

	w := &dfsWalker{graph: g, opts: o, visited: make(map[string]struct{})}
	if err := w.traverse(start, 0); err != nil {
		return nil, err
	}

	return w.out, nil
}

// traverse visits id at the given depth, recursing into neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// cancellation check (once per visit)
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth != NoLimit && depth > w.opts.MaxDepth {
		return nil
	}

	w.visited[id] = struct{}{}
	w.out = append(w.out, Visit{ID: id, Depth: depth})

	for _, nbr := range sortedIDs(neighborSet(w.graph, id, w.opts.EdgeType)) {
		if _, seen := w.visited[nbr]; !seen {
			if err := w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
