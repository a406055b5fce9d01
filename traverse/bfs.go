// Package traverse: breadth-first search.
package traverse

import "github.com/katalvlaran/propgraph/core"

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]struct{}
	out     []Visit
}

// BFS runs breadth-first search from start, visiting each reachable node
// at most once in level order: start at depth 0, then all depth-1 nodes,
// and so on. Nodes strictly beyond MaxDepth are excluded. Neighbor
// expansion is in sorted id order, so the visit sequence is deterministic.
// A missing start id yields an empty result, not an error.
// Complexity: O(V + E) plus sorting of each neighbor frontier.
func BFS(g *core.Graph, start string, opts ...Option) ([]Visit, error) {
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

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[string]struct{}),
	}
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.visited[id] = struct{}{}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.out = append(w.out, Visit{ID: item.id, Depth: item.depth})

		if w.opts.MaxDepth != NoLimit && item.depth >= w.opts.MaxDepth {
			continue // frontier: neighbors would exceed the bound
		}
		for _, nbr := range sortedIDs(neighborSet(w.graph, item.id, w.opts.EdgeType)) {
			if _, seen := w.visited[nbr]; !seen {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
