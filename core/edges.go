// Package core: edge lifecycle and edge lookups.
package core

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateEdge inserts a directed edge of the given type between two
// existing nodes and returns its generated id. Self-loops are permitted.
// Returns ErrNodeNotFound (wrapped with the offending endpoint) when an
// endpoint is missing, ErrEmptyEdgeType or ErrEmptyPropertyKey for
// malformed input.
// Complexity: O(P) amortized.
func (g *Graph) CreateEdge(from, to, edgeType string, properties map[string]any) (string, error) {
	if edgeType == "" {
		return "", ErrEmptyEdgeType
	}
	props, err := buildProps(properties)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: source node %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: target node %q", ErrNodeNotFound, to)
	}

	e := &Edge{ID: uuid.NewString(), From: from, To: to, Type: edgeType, Properties: props}
	g.edges[e.ID] = e
	g.index.addEdge(e)

	g.log.WithFields(logrus.Fields{
		"edge_id": e.ID,
		"type":    edgeType,
		"source":  from,
		"target":  to,
	}).Debug("edge created")

	return e.ID, nil
}

// Edge returns a deep copy of the edge with the given id.
// Returns ErrEdgeNotFound if it does not exist.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return cloneEdge(e), nil
}

// FindEdges returns edges matching the given criteria; every empty
// argument means "any". A known edge type narrows the scan through the
// type index; source/target act as a predicate filter. Unknown values
// yield an empty result, never an error. Result is sorted by edge id.
// Complexity: O(E) worst case, O(|type bucket|) with an edge type.
func (g *Graph) FindEdges(edgeType, from, to string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	match := func(e *Edge) bool {
		if from != "" && e.From != from {
			return false
		}
		if to != "" && e.To != to {
			return false
		}

		return true
	}

	var out []Edge
	if edgeType != "" {
		for eid := range g.index.byType[edgeType] {
			if e := g.edges[eid]; match(e) {
				out = append(out, cloneEdge(e))
			}
		}
	} else {
		for _, e := range g.edges {
			if match(e) {
				out = append(out, cloneEdge(e))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// UpdateEdge mutates an existing edge: a non-empty edgeType re-types it
// (moving it between type-index buckets); properties are merged
// key-by-key through the classifier.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) UpdateEdge(id, edgeType string, properties map[string]any) error {
	props, err := buildProps(properties)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}

	if edgeType != "" && edgeType != e.Type {
		if bucket, ok := g.index.byType[e.Type]; ok {
			delete(bucket, id)
			if len(bucket) == 0 {
				delete(g.index.byType, e.Type)
			}
		}
		e.Type = edgeType
		bucket, ok := g.index.byType[edgeType]
		if !ok {
			bucket = make(map[string]struct{})
			g.index.byType[edgeType] = bucket
		}
		bucket[id] = struct{}{}
	}

	for _, p := range props {
		setEdgeProp(e, p)
	}

	g.log.WithFields(logrus.Fields{
		"edge_id": id,
		"type":    e.Type,
		"props":   keysOf(properties),
	}).Debug("edge updated")

	return nil
}

// setEdgeProp writes one property, replacing in place or appending.
// Edge properties are not part of the property index.
func setEdgeProp(e *Edge, p Property) {
	for i := range e.Properties {
		if e.Properties[i].Key == p.Key {
			e.Properties[i].Value = p.Value

			return
		}
	}
	e.Properties = append(e.Properties, p)
}

// DeleteEdge removes an edge from storage, from the type index, and from
// both endpoints' adjacency buckets, in one critical section.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) DeleteEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.index.removeEdge(e)
	delete(g.edges, id)

	g.log.WithFields(logrus.Fields{
		"edge_id": id,
		"type":    e.Type,
	}).Debug("edge deleted")

	return nil
}

// Edges returns deep copies of every edge, sorted by id.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, cloneEdge(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IncidentEdges returns deep copies of every edge touching the given
// node, sorted by id, both outgoing and incoming, since adjacency is
// undirected for traversal purposes. Unknown ids yield an empty result.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) IncidentEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.index.adjacency[id]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, cloneEdge(g.edges[eid]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeTypes returns every distinct edge type currently in use, sorted.
// Derived from the type index, so it is always exact.
func (g *Graph) EdgeTypes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return keysOf(g.index.byType)
}

// EdgeTypeCounts returns, per edge type, how many edges currently hold it.
func (g *Graph) EdgeTypeCounts() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.index.byType))
	for t, bucket := range g.index.byType {
		out[t] = len(bucket)
	}

	return out
}
