// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Mesh.
package bfs

import (
	"errors"
	"fmt"

	"github.com/Karol03/mesh/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("bfs: mesh is nil")

	// ErrStartNotFound is returned when the start id is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNoPath is returned when no source can reach any target.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// OnVisit is called when BFS visits a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// OnExpand is called by ShortestPath before each layer expansion with
	// the side being grown, its depth and its frontier size.
	OnExpand func(forward bool, depth, frontier int)

	// MaxDepth, if > 0, bounds the explored depth (BFS) or the path
	// length in hops (ShortestPath). Zero disables the limit.
	MaxDepth int

	// FilterNeighbor can skip hops by returning false.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, no filtering
// and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(core.NodeID, int) error { return nil },
		OnExpand:       func(bool, int, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExpand registers a callback run before each ShortestPath layer.
func WithOnExpand(fn func(forward bool, depth, frontier int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth limits the search.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in edges) from the start.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: node %d not reached", ErrNoPath, dest)
	}

	return reversedChain(r.Parent, dest), nil
}

// reversedChain follows parent links from tail up to a root and returns
// the chain root-first.
func reversedChain(parent map[core.NodeID]core.NodeID, tail core.NodeID) []core.NodeID {
	path := chain(parent, tail)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// chain follows parent links from tail up to a root, tail first.
func chain(parent map[core.NodeID]core.NodeID, tail core.NodeID) []core.NodeID {
	path := []core.NodeID{tail}
	for cur := tail; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	return path
}
