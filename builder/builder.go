// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// builder.go — the chainable cursor façade over core.Mesh.
//
// Contract:
//   • Every mutator and hop returns the receiver so calls chain.
//   • Mutators forward to the Mesh; a precondition that fails there is a
//     silent no-op here too.
//   • Hops either land on a live node or leave the cursor at core.NoNode.
//   • Queries (PathBetween*, Current*) never change the mesh or the cursor.

package builder

import (
	"go.uber.org/zap"

	"github.com/Karol03/mesh/core"
)

// Builder drives one Mesh through its cursor.
//
// A Builder does not own additional state besides the options and the walk
// matched by the last pattern hop; any number of builders may share a Mesh,
// but, like the Mesh itself, not across goroutines.
type Builder[N, E core.Payload] struct {
	mesh     *core.Mesh[N, E]
	log      *zap.Logger
	maxDepth int
	walk     []core.NodeID
}

// Option customizes a Builder.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth bounds the length (in edges) of paths returned by the
// PathBetween family. Zero means unbounded. Panics on negative depth.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic("builder: WithMaxDepth(<0)")
	}
	return func(o *options) {
		o.maxDepth = d
	}
}

// New returns a Builder over m. A nil m gets a fresh core.Mesh with default
// options.
func New[N, E core.Payload](m *core.Mesh[N, E], opts ...Option) *Builder[N, E] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if m == nil {
		m = core.NewMesh[N, E]()
	}

	return &Builder[N, E]{
		mesh:     m,
		log:      m.Logger(),
		maxDepth: o.maxDepth,
	}
}

// Mesh returns the underlying store.
func (b *Builder[N, E]) Mesh() *core.Mesh[N, E] { return b.mesh }

// CurrentID returns the cursor (core.NoNode when unset).
func (b *Builder[N, E]) CurrentID() core.NodeID { return b.mesh.Cursor() }

// CurrentValue returns the payload of the cursor node.
func (b *Builder[N, E]) CurrentValue() (N, bool) {
	var zero N
	n, ok := b.mesh.Node(b.mesh.Cursor())
	if !ok {
		return zero, false
	}

	return n.Value(), true
}

// Found reports whether the cursor sits on a node.
func (b *Builder[N, E]) Found() bool { return b.mesh.Cursor() != core.NoNode }

// Create attaches node to the cursor with a zero-valued edge payload.
func (b *Builder[N, E]) Create(node N) *Builder[N, E] {
	var edge E

	return b.CreateWith(node, edge)
}

// CreateWith attaches node to the cursor through an edge carrying edge.
func (b *Builder[N, E]) CreateWith(node N, edge E) *Builder[N, E] {
	b.mesh.Attach(node, edge)

	return b
}

// Remove detaches id.
func (b *Builder[N, E]) Remove(id core.NodeID) *Builder[N, E] {
	b.mesh.Detach(id)

	return b
}

// RemoveCurrent detaches the cursor node.
func (b *Builder[N, E]) RemoveCurrent() *Builder[N, E] {
	b.mesh.DetachCursor()

	return b
}

// RemoveAll detaches every id in order.
func (b *Builder[N, E]) RemoveAll(ids ...core.NodeID) *Builder[N, E] {
	b.mesh.DetachAll(ids...)

	return b
}

// RemoveWhere detaches every node matching match.
func (b *Builder[N, E]) RemoveWhere(match core.NodePredicate[N]) *Builder[N, E] {
	b.mesh.DetachWhere(match)

	return b
}

// Connect ties x and y.
func (b *Builder[N, E]) Connect(x, y core.NodeID, edge E) *Builder[N, E] {
	b.mesh.Tie(x, y, edge)

	return b
}

// ConnectWhere ties every left match to every right match.
func (b *Builder[N, E]) ConnectWhere(left, right core.NodePredicate[N], edge E) *Builder[N, E] {
	b.mesh.TieWhere(left, right, edge)

	return b
}

// ConnectTo ties the cursor to y. No-op without a cursor.
func (b *Builder[N, E]) ConnectTo(y core.NodeID, edge E) *Builder[N, E] {
	if cur := b.mesh.Cursor(); cur != core.NoNode {
		b.mesh.Tie(cur, y, edge)
	}

	return b
}

// ConnectToWhere ties the cursor to every node matching match.
// No-op without a cursor.
func (b *Builder[N, E]) ConnectToWhere(match core.NodePredicate[N], edge E) *Builder[N, E] {
	if cur := b.mesh.Cursor(); cur != core.NoNode {
		b.mesh.TieTo(cur, match, edge)
	}

	return b
}

// lose resets the cursor after a failed hop.
func (b *Builder[N, E]) lose(op string) *Builder[N, E] {
	b.log.Debug("cursor lost", zap.String("op", op), zap.Uint32("from", uint32(b.mesh.Cursor())))
	b.mesh.SetCursor(core.NoNode)

	return b
}
