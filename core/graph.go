// Package core: the Graph engine, node lifecycle and the read surface.
//
// One sync.RWMutex guards entity storage and all four indexes together:
// each mutating operation (including the cascading DeleteNode) is a single
// critical section, so storage and indexes can never be observed out of
// step. Read operations take the read lock and hand out deep copies.
package core

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Graph is the in-memory labeled property graph engine. It owns the node
// and edge arenas and exactly one index instance; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards nodes, edges, and index as one unit

	nodes map[string]*Node // node id → node
	edges map[string]*Edge // edge id → edge
	index *graphIndex      // derived lookup state

	log logrus.FieldLogger
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		index: newGraphIndex(),
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// buildProps classifies a raw property map into an ordered collection,
// sorted by key so entity construction is deterministic.
// Returns ErrEmptyPropertyKey for an empty key.
func buildProps(properties map[string]any) ([]Property, error) {
	if len(properties) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(properties))
	for k := range properties {
		if k == "" {
			return nil, ErrEmptyPropertyKey
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Property, 0, len(keys))
	for _, k := range keys {
		out = append(out, Property{Key: k, Value: Classify(properties[k])})
	}

	return out, nil
}

// CreateNode inserts a new node with the given labels and properties and
// returns its generated id. An empty label set is allowed. Each property
// value passes through the Classify collaborator exactly once.
// Returns ErrEmptyLabel or ErrEmptyPropertyKey for malformed input.
// Complexity: O(L + P) amortized.
func (g *Graph) CreateNode(labels []string, properties map[string]any) (string, error) {
	normalized, err := normalizeLabels(labels)
	if err != nil {
		return "", err
	}
	props, err := buildProps(properties)
	if err != nil {
		return "", err
	}

	n := &Node{ID: uuid.NewString(), Labels: normalized, Properties: props}

	g.mu.Lock()
	g.nodes[n.ID] = n
	g.index.addNode(n)
	g.mu.Unlock()

	g.log.WithFields(logrus.Fields{
		"node_id": n.ID,
		"labels":  normalized,
		"props":   keysOf(properties),
	}).Debug("node created")

	return n.ID, nil
}

// Node returns a deep copy of the node with the given id.
// Returns ErrNodeNotFound if it does not exist.
// Complexity: O(L + P).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return cloneNode(n), nil
}

// FindNodes returns nodes matching the given label (empty means "any")
// and property filters, using only the secondary indexes, never a full
// property scan: the intersection is seeded from the smallest matching
// bucket, so result size is bounded by the narrowest criterion. Unknown
// labels or values yield an empty result, never an error.
// Result is sorted by node id.
// Complexity: O(F·|smallest bucket| + R log R) for F filters, R results.
func (g *Graph) FindNodes(label string, filters map[string]any) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Collect one id set per criterion; any empty bucket ends the query.
	sets := make([]map[string]struct{}, 0, len(filters)+1)
	if label != "" {
		bucket := g.index.nodesByLabel(label)
		if len(bucket) == 0 {
			return nil
		}
		sets = append(sets, bucket)
	}
	for key, raw := range filters {
		bucket := g.index.nodesByProp(key, Classify(raw))
		if len(bucket) == 0 {
			return nil
		}
		sets = append(sets, bucket)
	}

	// No criteria at all: every node matches.
	if len(sets) == 0 {
		out := make([]Node, 0, len(g.nodes))
		for _, n := range g.nodes {
			out = append(out, cloneNode(n))
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

		return out
	}

	// Seed from the smallest bucket, then check each id against the rest.
	seed := sets[0]
	for _, s := range sets[1:] {
		if len(s) < len(seed) {
			seed = s
		}
	}

	out := make([]Node, 0, len(seed))
	for id := range seed {
		member := true
		for _, s := range sets {
			if _, ok := s[id]; !ok {
				member = false

				break
			}
		}
		if member {
			out = append(out, cloneNode(g.nodes[id]))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// UpdateNode mutates an existing node. A non-nil labels slice REPLACES the
// node's entire label set (not a merge); properties are merged key-by-key,
// each value re-classified, with the property index moved accordingly.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(L + P) amortized.
func (g *Graph) UpdateNode(id string, labels []string, properties map[string]any) error {
	var (
		normalized []string
		err        error
	)
	if labels != nil {
		if normalized, err = normalizeLabels(labels); err != nil {
			return err
		}
	}
	props, err := buildProps(properties)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	if labels != nil {
		for _, old := range n.Labels {
			g.index.removeLabel(old, id)
		}
		n.Labels = normalized
		for _, l := range normalized {
			g.index.addLabel(l, id)
		}
	}

	for _, p := range props {
		g.setNodeProp(n, p)
	}

	g.log.WithFields(logrus.Fields{
		"node_id": id,
		"labels":  labels != nil,
		"props":   keysOf(properties),
	}).Debug("node updated")

	return nil
}

// setNodeProp writes one property (replace-in-place or append) and moves
// the property index from the old value bucket to the new one.
// Caller holds the write lock.
func (g *Graph) setNodeProp(n *Node, p Property) {
	for i := range n.Properties {
		if n.Properties[i].Key == p.Key {
			g.index.removeProp(p.Key, n.Properties[i].Value, n.ID)
			n.Properties[i].Value = p.Value
			g.index.addProp(p.Key, p.Value, n.ID)

			return
		}
	}
	n.Properties = append(n.Properties, p)
	g.index.addProp(p.Key, p.Value, n.ID)
}

// DeleteNode removes a node and, first, every edge incident to it, one
// atomic step from any reader's perspective: either the node and all its
// edges are gone, or nothing changed.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v) + L + P).
func (g *Graph) DeleteNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	// Cascade: snapshot the incident set, then remove each edge from
	// storage, the type index, and both endpoints' adjacency buckets.
	incident := make([]string, 0, len(g.index.adjacency[id]))
	for eid := range g.index.adjacency[id] {
		incident = append(incident, eid)
	}
	for _, eid := range incident {
		e := g.edges[eid]
		g.index.removeEdge(e)
		delete(g.edges, eid)
	}

	g.index.removeNode(n)
	delete(g.nodes, id)

	g.log.WithFields(logrus.Fields{
		"node_id":        id,
		"cascaded_edges": len(incident),
	}).Debug("node deleted")

	return nil
}

// HasNode reports whether a node with the given id exists. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NodeIDs returns every node id in sorted order. Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns deep copies of every node, sorted by id.
// Complexity: O(V log V + Σ(L+P)).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, cloneNode(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Labels returns every distinct label currently held by at least one
// node, sorted. Derived from the label index, so it is always exact.
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return keysOf(g.index.byLabel)
}

// LabelCounts returns, per label, how many nodes currently hold it.
func (g *Graph) LabelCounts() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.index.byLabel))
	for label, bucket := range g.index.byLabel {
		out[label] = len(bucket)
	}

	return out
}
