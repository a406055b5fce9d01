// Package traverse: tunable options, results, and error definitions.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNoPath is returned by ShortestPath when no route exists, or when
	// either endpoint is missing.
	ErrNoPath = errors.New("traverse: no path")
)

// NoLimit disables the depth bound.
const NoLimit = -1

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// EdgeType, if non-empty, restricts the walk to edges of this type.
	EdgeType string

	// MaxDepth bounds BFS/DFS depth inclusively: nodes strictly beyond it
	// are excluded. 0 visits only the start node; NoLimit disables the
	// bound (the default).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no edge-type filter
//   - no depth bound (MaxDepth == NoLimit)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		EdgeType: "",
		MaxDepth: NoLimit,
		err:      nil,
	}
}

// apply folds the caller's options over the defaults and surfaces any
// recorded violation.
func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeType restricts the walk to edges of the given type.
// An empty string keeps the default (all edge types).
func WithEdgeType(edgeType string) Option {
	return func(o *Options) { o.EdgeType = edgeType }
}

// WithMaxDepth bounds the traversal at the given depth (inclusive).
//
//	d > 0:       visit nodes up to and including depth d
//	d == 0:      visit only the start node
//	d == NoLimit: disable the bound (the default)
//	other d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 && d != NoLimit {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Visit is one step of a BFS/DFS traversal: a node id and its distance
// (in edges) from the start node.
type Visit struct {
	ID    string
	Depth int
}
