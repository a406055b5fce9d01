// Package core: the structural export/import boundary.
//
// Export produces a Document of every node and edge plus derived
// statistics; Import fully replaces current state, rebuilding all four
// indexes by replaying the document in order through the same insert
// paths CreateNode/CreateEdge use, so a bulk load is indistinguishable
// from one-at-a-time insertion. Round-trip law:
// Export(Import(Export(G))) == Export(G) for any graph G.
package core

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Statistics summarizes a Document.
type Statistics struct {
	NodeCount int      `json:"total_nodes"`
	EdgeCount int      `json:"total_edges"`
	Labels    []string `json:"labels"`
	EdgeTypes []string `json:"edge_types"`
}

// Document is the structural interchange form of a graph.
type Document struct {
	Nodes      []Node     `json:"nodes"`
	Edges      []Edge     `json:"edges"`
	Statistics Statistics `json:"statistics"`
}

// Export captures the whole graph as a Document under a single read
// lock, so the document is one consistent snapshot: every edge's
// endpoints are present in it and the statistics match its contents
// exactly, no matter how writers interleave. Nodes and edges are sorted
// by id, labels and edge types sorted lexically, so exporting the same
// state twice yields byte-identical JSON.
// Complexity: O(V log V + E log E).
func (g *Graph) Export() Document {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, cloneNode(n))
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, cloneEdge(e))
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	return Document{
		Nodes: nodes,
		Edges: edges,
		Statistics: Statistics{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
			Labels:    keysOf(g.index.byLabel),
			EdgeTypes: keysOf(g.index.byType),
		},
	}
}

// ExportJSON renders Export() as indented JSON.
func (g *Graph) ExportJSON() ([]byte, error) {
	doc := g.Export()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("core: export: %w", err)
	}

	return data, nil
}

// Import replaces the graph's entire state with the document's contents.
// Every node, then every edge, is replayed in document order into fresh
// arenas and a fresh index; only a fully valid document is swapped in, so
// a failed import leaves prior state untouched.
// Returns ErrNilDocument, ErrEmptyID, ErrEmptyLabel, ErrEmptyPropertyKey,
// ErrEmptyEdgeType, or ErrNodeNotFound (an edge referencing a node absent
// from the document), each wrapped with the offending entity id.
// Complexity: O(V + E) plus index filing.
func (g *Graph) Import(doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	nodes := make(map[string]*Node, len(doc.Nodes))
	edges := make(map[string]*Edge, len(doc.Edges))
	index := newGraphIndex()

	for _, n := range doc.Nodes {
		if n.ID == "" {
			return fmt.Errorf("core: import node: %w", ErrEmptyID)
		}
		labels, err := normalizeLabels(n.Labels)
		if err != nil {
			return fmt.Errorf("core: import node %q: %w", n.ID, err)
		}
		props, err := dedupeProps(n.Properties)
		if err != nil {
			return fmt.Errorf("core: import node %q: %w", n.ID, err)
		}
		node := &Node{ID: n.ID, Labels: labels, Properties: props}
		if prev, dup := nodes[n.ID]; dup {
			// Document order wins for duplicate ids, mirroring replay.
			index.removeNode(prev)
		}
		nodes[n.ID] = node
		index.addNode(node)
	}

	for _, e := range doc.Edges {
		if e.ID == "" {
			return fmt.Errorf("core: import edge: %w", ErrEmptyID)
		}
		if e.Type == "" {
			return fmt.Errorf("core: import edge %q: %w", e.ID, ErrEmptyEdgeType)
		}
		if _, ok := nodes[e.From]; !ok {
			return fmt.Errorf("core: import edge %q: source %q: %w", e.ID, e.From, ErrNodeNotFound)
		}
		if _, ok := nodes[e.To]; !ok {
			return fmt.Errorf("core: import edge %q: target %q: %w", e.ID, e.To, ErrNodeNotFound)
		}
		props, err := dedupeProps(e.Properties)
		if err != nil {
			return fmt.Errorf("core: import edge %q: %w", e.ID, err)
		}
		edge := &Edge{ID: e.ID, From: e.From, To: e.To, Type: e.Type, Properties: props}
		if prev, dup := edges[e.ID]; dup {
			index.removeEdge(prev)
		}
		edges[e.ID] = edge
		index.addEdge(edge)
	}

	g.mu.Lock()
	g.nodes = nodes
	g.edges = edges
	g.index = index
	g.mu.Unlock()

	g.log.WithFields(logrus.Fields{
		"nodes": len(nodes),
		"edges": len(edges),
	}).Info("graph imported")

	return nil
}

// ImportJSON decodes data as a Document and imports it. A decode error
// leaves prior state untouched.
func (g *Graph) ImportJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("core: import: %w", err)
	}

	return g.Import(&doc)
}

// dedupeProps deep-copies an ordered property collection, keeping the
// last write per key in its first-seen position (replay semantics).
// Returns ErrEmptyPropertyKey for an empty key.
func dedupeProps(props []Property) ([]Property, error) {
	if len(props) == 0 {
		return nil, nil
	}
	out := make([]Property, 0, len(props))
	pos := make(map[string]int, len(props))
	for _, p := range props {
		if p.Key == "" {
			return nil, ErrEmptyPropertyKey
		}
		if i, seen := pos[p.Key]; seen {
			out[i].Value = p.Value.clone()
			continue
		}
		pos[p.Key] = len(out)
		out = append(out, Property{Key: p.Key, Value: p.Value.clone()})
	}

	return out, nil
}
