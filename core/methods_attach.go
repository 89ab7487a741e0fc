// SPDX-License-Identifier: MIT
// File: methods_attach.go
// Role: Node and edge creation: Attach, Tie, TieTo, TieWhere, InsertNode, InsertEdge.
// Determinism:
//   - Predicate variants scan nodes in ascending id order.
//   - Failed preconditions are silent no-ops that return zero ids.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Attach creates a node carrying node. With the cursor unset the node stays
// isolated; otherwise an edge carrying edge links the cursor to it. Either
// way the new node becomes the cursor.
//
// Returns the id of the created node. Attach never fails.
// Complexity: O(log V + log E).
func (m *Mesh[N, E]) Attach(node N, edge E) NodeID {
	prev := m.cursor
	id := m.InsertNode(node)
	if prev != NoNode {
		m.link(prev, id, edge)
	}
	m.cursor = id

	m.log.Debug("node attached",
		zap.Uint32("node", uint32(id)),
		zap.Uint32("from", uint32(prev)))

	return id
}

// Tie links two existing nodes with an edge carrying edge.
//
// Tie is a no-op returning NoEdge when either id is absent, when a == b, or
// when the two incident-edge sets already share an edge (the nodes are
// already adjacent).
// Complexity: O(min(deg a, deg b) · log max(deg a, deg b)).
func (m *Mesh[N, E]) Tie(a, b NodeID, edge E) EdgeID {
	if a == b {
		return NoEdge
	}
	left, ok := m.nodes.Get(a)
	if !ok {
		return NoEdge
	}
	right, ok := m.nodes.Get(b)
	if !ok {
		return NoEdge
	}
	if intersects(left, right) {
		return NoEdge
	}

	eid := m.link(a, b, edge)
	m.log.Debug("edge tied",
		zap.Uint32("edge", uint32(eid)),
		zap.Uint32("first", uint32(a)),
		zap.Uint32("second", uint32(b)))

	return eid
}

// TieTo ties a to every node matching match, scanning in store order.
// A match equal to a is skipped. Every created edge carries a copy of edge.
// Returns the created edge ids (possibly none).
func (m *Mesh[N, E]) TieTo(a NodeID, match NodePredicate[N], edge E) []EdgeID {
	if match == nil || !m.HasNode(a) {
		return nil
	}

	var out []EdgeID
	for _, b := range m.Matches(match) {
		if b == a {
			continue
		}
		if eid := m.Tie(a, b, edge); eid != NoEdge {
			out = append(out, eid)
		}
	}

	return out
}

// TieWhere ties every node matching left to every node matching right.
// Both match sets come from a single scan taken before any edge is added;
// pairs naming the same node are skipped.
func (m *Mesh[N, E]) TieWhere(left, right NodePredicate[N], edge E) []EdgeID {
	if left == nil || right == nil {
		return nil
	}

	var lefts, rights []NodeID
	m.nodes.Scan(func(id NodeID, n *Node[N]) bool {
		if left(n) {
			lefts = append(lefts, id)
		}
		if right(n) {
			rights = append(rights, id)
		}
		return true
	})

	var out []EdgeID
	for _, a := range lefts {
		for _, b := range rights {
			if a == b {
				continue
			}
			if eid := m.Tie(a, b, edge); eid != NoEdge {
				out = append(out, eid)
			}
		}
	}

	return out
}

// InsertNode stores an isolated node without touching the cursor.
// It is the low-level entry point used by loaders.
func (m *Mesh[N, E]) InsertNode(node N) NodeID {
	id := m.newNodeID()
	m.nodes.Set(id, &Node[N]{id: id, value: node})
	m.metrics.NodeAttached(m.name)
	m.publishSize()

	return id
}

// InsertEdge stores an edge between two existing nodes without the
// adjacency guard applied by Tie, so loaders can reproduce any stored
// topology.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is missing.
//   - ErrSelfLoop if a == b.
func (m *Mesh[N, E]) InsertEdge(a, b NodeID, edge E) (EdgeID, error) {
	if a == b {
		return NoEdge, fmt.Errorf("InsertEdge(%d, %d): %w", a, b, ErrSelfLoop)
	}
	if !m.HasNode(a) {
		return NoEdge, fmt.Errorf("InsertEdge: endpoint %d: %w", a, ErrNodeNotFound)
	}
	if !m.HasNode(b) {
		return NoEdge, fmt.Errorf("InsertEdge: endpoint %d: %w", b, ErrNodeNotFound)
	}

	return m.link(a, b, edge), nil
}

// link creates the edge record and registers it on both endpoints.
// Both endpoints must exist.
func (m *Mesh[N, E]) link(a, b NodeID, edge E) EdgeID {
	eid := m.newEdgeID()
	m.edges.Set(eid, &Edge[E]{id: eid, first: a, second: b, value: edge})

	left, _ := m.nodes.Get(a)
	right, _ := m.nodes.Get(b)
	left.edges.Insert(eid)
	right.edges.Insert(eid)

	m.metrics.EdgeTied(m.name)
	m.publishSize()

	return eid
}

// intersects reports whether two nodes share an incident edge id.
// The smaller set is scanned against the larger one.
func intersects[N Payload](a, b *Node[N]) bool {
	if a.edges.Len() > b.edges.Len() {
		a, b = b, a
	}
	found := false
	a.edges.Scan(func(e EdgeID) bool {
		if b.edges.Contains(e) {
			found = true
			return false
		}
		return true
	})

	return found
}
