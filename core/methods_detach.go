// SPDX-License-Identifier: MIT
// File: methods_detach.go
// Role: Node removal with connectivity repair: Detach, DetachCursor,
//       DetachAll, DetachWhere, and the unexported rebranch/deleteBranch pass.
// Determinism:
//   - Former neighbors are resolved in ascending id order.
//   - When two branches exhaust in the same round, the right one survives.

package core

import (
	"github.com/tidwall/btree"
	"go.uber.org/zap"
)

// Detach removes the node id together with its incident edges, then repairs
// connectivity:
//
//   - degree 0: the node is erased.
//   - degree 1: the edge and the node are erased; the neighbor is updated.
//   - degree ≥ 2: every incident edge and the node are erased, then the
//     former neighbors are checked pairwise. Among branches that can no
//     longer reach each other only one survives; the others are erased in
//     full, so no orphaned subgraph is ever left behind.
//
// The cursor resets to NoNode if it was id or if its node was purged.
// Detaching an absent id is a no-op.
// Complexity: O(deg(id)) for degree ≤ 1, O(V + E) for the repair pass.
func (m *Mesh[N, E]) Detach(id NodeID) {
	node, ok := m.nodes.Get(id)
	if !ok {
		return
	}

	incident := node.edges.Keys()
	switch len(incident) {
	case 0:
		m.nodes.Delete(id)
	case 1:
		m.unlink(incident[0])
		m.nodes.Delete(id)
	default:
		var leaves btree.Set[NodeID]
		for _, eid := range incident {
			e, _ := m.edges.Get(eid)
			if other := e.Other(id); other != id {
				leaves.Insert(other)
			}
			m.unlink(eid)
		}
		m.nodes.Delete(id)
		m.rebranch(&leaves)
	}

	if m.cursor == id || !m.HasNode(m.cursor) {
		m.cursor = NoNode
	}

	m.metrics.NodeDetached(m.name)
	m.publishSize()
	m.log.Debug("node detached",
		zap.Uint32("node", uint32(id)),
		zap.Int("degree", len(incident)))
}

// DetachCursor detaches the cursor node, if any.
func (m *Mesh[N, E]) DetachCursor() {
	if m.cursor != NoNode {
		m.Detach(m.cursor)
	}
}

// DetachAll detaches each id in order. Ids already erased by an earlier
// repair pass are skipped.
func (m *Mesh[N, E]) DetachAll(ids ...NodeID) {
	for _, id := range ids {
		m.Detach(id)
	}
}

// DetachWhere collects every node matching match in one scan, then detaches
// them in ascending id order. Each detach repairs fully before the next.
func (m *Mesh[N, E]) DetachWhere(match NodePredicate[N]) {
	if match == nil {
		return
	}
	m.DetachAll(m.Matches(match)...)
}

// unlink erases one edge and drops it from both endpoint incident sets.
func (m *Mesh[N, E]) unlink(eid EdgeID) {
	e, ok := m.edges.Delete(eid)
	if !ok {
		return
	}
	if n, ok := m.nodes.Get(e.first); ok {
		n.edges.Delete(eid)
	}
	if n, ok := m.nodes.Get(e.second); ok {
		n.edges.Delete(eid)
	}
}

// branchResult is the verdict of one bidirectional probe.
type branchResult int

const (
	branchesConnected branchResult = iota
	leftExhausted                  // left side ran out first (or both did)
	rightExhausted                 // right side ran out first
)

// rebranch resolves the former neighbors of a detached node.
//
// The first leaf becomes the surviving "left" root. Every other leaf is
// probed against it; a leaf reached by either search along the way is
// dropped from the work set, because it shares a branch with one of the
// two roots. When a probe proves two roots disconnected, the exhausted
// (smaller) branch is erased and the other becomes the new left root.
func (m *Mesh[N, E]) rebranch(leaves *btree.Set[NodeID]) {
	left, ok := leaves.PopMin()
	if !ok {
		return
	}

	for leaves.Len() > 0 {
		right, _ := leaves.PopMin()

		switch m.probe(left, right, leaves) {
		case branchesConnected:
			continue
		case rightExhausted:
			m.deleteBranch(right, leaves)
		case leftExhausted:
			m.deleteBranch(left, leaves)
			left = right
		}
	}
}

// probe runs a bidirectional breadth-first search from left and right,
// drawing one node per side per round. Nodes drawn from either frontier are
// removed from leaves.
//
// Returns branchesConnected as soon as the visited sets meet, otherwise the
// side whose frontier emptied. Simultaneous exhaustion reports the left
// side, so the right branch survives.
func (m *Mesh[N, E]) probe(left, right NodeID, leaves *btree.Set[NodeID]) branchResult {
	l := newFrontier(left)
	r := newFrontier(right)

	for !l.empty() && !r.empty() {
		lnode := l.pop()
		rnode := r.pop()
		leaves.Delete(lnode)
		leaves.Delete(rnode)

		if r.visited[lnode] || l.visited[rnode] {
			return branchesConnected
		}

		m.expand(l, lnode)
		m.expand(r, rnode)
	}

	if l.empty() {
		return leftExhausted
	}

	return rightExhausted
}

// frontier is one side of the bidirectional probe.
type frontier struct {
	queue   []NodeID
	queued  map[NodeID]bool
	visited map[NodeID]bool
}

func newFrontier(root NodeID) *frontier {
	return &frontier{
		queue:   []NodeID{root},
		queued:  map[NodeID]bool{root: true},
		visited: make(map[NodeID]bool),
	}
}

func (f *frontier) empty() bool { return len(f.queue) == 0 }

func (f *frontier) pop() NodeID {
	id := f.queue[0]
	f.queue = f.queue[1:]
	f.visited[id] = true

	return id
}

// expand queues every unseen neighbor of id.
func (m *Mesh[N, E]) expand(f *frontier, id NodeID) {
	for _, next := range m.Neighbors(id) {
		if !f.queued[next] {
			f.queued[next] = true
			f.queue = append(f.queue, next)
		}
	}
}

// deleteBranch erases every node and edge reachable from root in the
// current graph and drops the erased nodes from leaves.
func (m *Mesh[N, E]) deleteBranch(root NodeID, leaves *btree.Set[NodeID]) {
	nodes, edges := m.collectBranch(root)

	for _, eid := range edges {
		m.edges.Delete(eid)
	}
	for _, id := range nodes {
		m.nodes.Delete(id)
		leaves.Delete(id)
	}

	m.metrics.BranchPurged(m.name, len(nodes))
	m.log.Debug("branch purged",
		zap.Uint32("root", uint32(root)),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)))
}

// collectBranch gathers every node and edge reachable from root with an
// iterative depth-first traversal, in discovery order.
func (m *Mesh[N, E]) collectBranch(root NodeID) ([]NodeID, []EdgeID) {
	if !m.HasNode(root) {
		return nil, nil
	}

	var (
		nodes        []NodeID
		edges        []EdgeID
		seenNodes    = map[NodeID]bool{root: true}
		seenEdges    = make(map[EdgeID]bool)
		stack        = []NodeID{root}
		current      NodeID
		currentNode  *Node[N]
		neighborEdge *Edge[E]
	)
	for len(stack) > 0 {
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, current)

		currentNode, _ = m.nodes.Get(current)
		currentNode.edges.Scan(func(eid EdgeID) bool {
			if seenEdges[eid] {
				return true
			}
			seenEdges[eid] = true
			edges = append(edges, eid)

			neighborEdge, _ = m.edges.Get(eid)
			next := neighborEdge.Other(current)
			if !seenNodes[next] {
				seenNodes[next] = true
				stack = append(stack, next)
			}
			return true
		})
	}

	return nodes, edges
}
