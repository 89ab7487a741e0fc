// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// hops.go — cursor movement.
//
// Every hop resolves to exactly one of two outcomes:
//   • success: the cursor lands on a live node;
//   • failure: the cursor is core.NoNode (Found() == false).
// A failed hop never leaves the cursor where it was.

package builder

import (
	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/dfs"
)

// HopVia moves the cursor across eid to the edge's other endpoint. The edge
// must exist and be incident to the cursor; otherwise the cursor resets.
func (b *Builder[N, E]) HopVia(eid core.EdgeID) *Builder[N, E] {
	cur := b.mesh.Cursor()
	e, ok := b.mesh.Edge(eid)
	if cur == core.NoNode || !ok || !e.Touches(cur) {
		return b.lose("HopVia")
	}
	b.mesh.SetCursor(e.Other(cur))

	return b
}

// HopTo moves the cursor to id, or resets it when id is absent.
func (b *Builder[N, E]) HopTo(id core.NodeID) *Builder[N, E] {
	if !b.mesh.HasNode(id) {
		return b.lose("HopTo")
	}
	b.mesh.SetCursor(id)

	return b
}

// HopToWhere moves the cursor to the first node (in id order) matching
// match, or resets it when nothing matches.
func (b *Builder[N, E]) HopToWhere(match core.NodePredicate[N]) *Builder[N, E] {
	id := b.mesh.FirstMatch(match)
	if id == core.NoNode {
		return b.lose("HopToWhere")
	}
	b.mesh.SetCursor(id)

	return b
}

// HopToPathEnd moves the cursor to the last of ids when every id exists and
// every consecutive pair shares an edge. An empty sequence or a broken link
// resets the cursor.
func (b *Builder[N, E]) HopToPathEnd(ids ...core.NodeID) *Builder[N, E] {
	return b.hopPath("HopToPathEnd", ids, false)
}

// HopToUniquePathEnd is HopToPathEnd that also rejects repeated ids.
func (b *Builder[N, E]) HopToUniquePathEnd(ids ...core.NodeID) *Builder[N, E] {
	return b.hopPath("HopToUniquePathEnd", ids, true)
}

func (b *Builder[N, E]) hopPath(op string, ids []core.NodeID, unique bool) *Builder[N, E] {
	if len(ids) == 0 {
		return b.lose(op)
	}

	var seen map[core.NodeID]struct{}
	if unique {
		seen = make(map[core.NodeID]struct{}, len(ids))
	}
	for i, id := range ids {
		if !b.mesh.HasNode(id) {
			return b.lose(op)
		}
		if unique {
			if _, dup := seen[id]; dup {
				return b.lose(op)
			}
			seen[id] = struct{}{}
		}
		if i > 0 && b.mesh.EdgeBetween(ids[i-1], id) == core.NoEdge {
			return b.lose(op)
		}
	}
	b.mesh.SetCursor(ids[len(ids)-1])

	return b
}

// HopToPatternEnd finds the first walk whose i-th node matches preds[i]
// (roots in id order, neighbors in incident-edge order, backtracking on dead
// ends) and moves the cursor to its last node. A nil predicate matches any
// node. Without a match the cursor resets.
func (b *Builder[N, E]) HopToPatternEnd(preds ...core.NodePredicate[N]) *Builder[N, E] {
	return b.hopPattern("HopToPatternEnd", preds)
}

// HopToUniquePatternEnd is HopToPatternEnd over walks that visit each node
// at most once.
func (b *Builder[N, E]) HopToUniquePatternEnd(preds ...core.NodePredicate[N]) *Builder[N, E] {
	return b.hopPattern("HopToUniquePatternEnd", preds, dfs.WithUnique())
}

func (b *Builder[N, E]) hopPattern(op string, preds []core.NodePredicate[N], opts ...dfs.Option) *Builder[N, E] {
	walk, err := dfs.Walk(b.mesh, preds, opts...)
	if err != nil {
		b.walk = nil
		return b.lose(op)
	}
	b.walk = walk
	b.mesh.SetCursor(walk[len(walk)-1])

	return b
}

// LastWalk returns the node sequence matched by the last pattern hop, or nil
// when that hop failed or none was made.
func (b *Builder[N, E]) LastWalk() []core.NodeID {
	if len(b.walk) == 0 {
		return nil
	}
	out := make([]core.NodeID, len(b.walk))
	copy(out, b.walk)

	return out
}
