// Package core: entity types, sentinel errors, and engine options.
//
// This file declares Node, Edge, Property, the GraphOption constructors,
// and the sentinel errors shared by every engine operation.
package core

import (
	"errors"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyLabel indicates a label was the empty string.
	ErrEmptyLabel = errors.New("core: label is empty")

	// ErrEmptyPropertyKey indicates a property key was the empty string.
	ErrEmptyPropertyKey = errors.New("core: property key is empty")

	// ErrEmptyEdgeType indicates an edge type was the empty string.
	ErrEmptyEdgeType = errors.New("core: edge type is empty")

	// ErrEmptyID indicates an imported entity carried an empty id.
	ErrEmptyID = errors.New("core: entity id is empty")

	// ErrNilDocument indicates Import was handed a nil document.
	ErrNilDocument = errors.New("core: nil document")
)

// Property is one key/value attribute on a node or an edge.
//
// Within one entity, keys are unique; writing an existing key replaces its
// value in place (last-write-wins, position preserved). The advisory
// data_type tag serialized alongside the value is derived from Value.Kind.
type Property struct {
	// Key identifies the property within its entity.
	Key string

	// Value is the tagged-variant payload.
	Value Value
}

// Node is an addressable graph vertex with labels and properties.
//
// ID is immutable after creation. Labels behave as a set of non-empty
// strings and are kept sorted and deduplicated. Properties are an ordered
// collection with unique keys.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string `json:"id"`

	// Labels classify the node's kind; zero or more, sorted, unique.
	Labels []string `json:"labels"`

	// Properties is the node's ordered attribute collection.
	Properties []Property `json:"properties"`
}

// HasLabel reports whether the node carries the given label.
func (n Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}

	return false
}

// Property returns the value stored under key, and whether it exists.
func (n Node) Property(key string) (Value, bool) {
	return propLookup(n.Properties, key)
}

// Edge is a directed, typed relationship between two existing nodes,
// itself carrying properties. Self-loops (From == To) are permitted.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string `json:"id"`

	// From is the source node id.
	From string `json:"source_id"`

	// To is the target node id.
	To string `json:"target_id"`

	// Type is the single classifying relationship string.
	Type string `json:"edge_type"`

	// Properties is the edge's ordered attribute collection.
	Properties []Property `json:"properties"`
}

// Property returns the value stored under key, and whether it exists.
func (e Edge) Property(key string) (Value, bool) {
	return propLookup(e.Properties, key)
}

// propLookup scans an ordered property collection for key.
func propLookup(props []Property, key string) (Value, bool) {
	for _, p := range props {
		if p.Key == key {
			return p.Value, true
		}
	}

	return Value{}, false
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger installs a structured logger for mutation events.
// The engine is silent by default; pass logrus.StandardLogger() or any
// FieldLogger to observe creates, updates, deletes, and imports.
func WithLogger(log logrus.FieldLogger) GraphOption {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}

// discardLogger builds the default no-output logger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// normalizeLabels validates, deduplicates, and sorts a label set.
// Returns ErrEmptyLabel if any label is the empty string.
func normalizeLabels(labels []string) ([]string, error) {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, ErrEmptyLabel
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)

	return out, nil
}

// cloneProps deep-copies an ordered property collection.
func cloneProps(props []Property) []Property {
	if props == nil {
		return nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		out[i] = Property{Key: p.Key, Value: p.Value.clone()}
	}

	return out
}

// cloneNode deep-copies a node for hand-off across the API boundary.
func cloneNode(n *Node) Node {
	labels := make([]string, len(n.Labels))
	copy(labels, n.Labels)

	return Node{ID: n.ID, Labels: labels, Properties: cloneProps(n.Properties)}
}

// cloneEdge deep-copies an edge for hand-off across the API boundary.
func cloneEdge(e *Edge) Edge {
	return Edge{ID: e.ID, From: e.From, To: e.To, Type: e.Type, Properties: cloneProps(e.Properties)}
}
