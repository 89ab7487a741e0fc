// Package dfs defines types and options for depth-first search over a
// core.Mesh: pre-/post-order hooks, depth limiting, neighbor filtering,
// full-mesh (forest) traversal, and predicate walks.
package dfs

import (
	"errors"

	"github.com/Karol03/mesh/core"
)

var (
	// ErrMeshNil is returned when a nil *core.Mesh is passed.
	ErrMeshNil = errors.New("dfs: mesh is nil")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrEmptyPattern is returned by Walk for an empty predicate sequence.
	ErrEmptyPattern = errors.New("dfs: empty pattern")

	// ErrNoWalk is returned by Walk when no node sequence matches the pattern.
	ErrNoWalk = errors.New("dfs: no matching walk")
)

// Option configures optional behavior of DFS and Walk.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for depth-first traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.NodeID) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor id before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id core.NodeID) bool

	// FullTraversal, if true, runs DFS from every unvisited node,
	// covering disconnected components (forest traversal).
	FullTraversal bool

	// Unique makes Walk reject walks that revisit a node.
	Unique bool

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions with no hooks, no depth limit,
// no filtering, single-source traversal and non-unique walks.
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor ids; skipped ones are counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited node in ascending id order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithUnique restricts Walk to simple paths: no node may appear twice.
func WithUnique() Option {
	return func(o *DFSOptions) {
		o.Unique = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each node to its tree depth from its root.
	Depth map[core.NodeID]int

	// Parent maps each node to the node it was first discovered from.
	// Roots have no entry.
	Parent map[core.NodeID]core.NodeID

	// Visited flags which nodes were reached.
	Visited map[core.NodeID]bool

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
