// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over the store: lookups, scans, cursor access and
//       the small mutation surface used by builder and pack.
// Policy:
//   - No connectivity logic here; Detach lives in methods_detach.go.
//   - Scans run in ascending id order.

package core

import "go.uber.org/zap"

// Stats is a point-in-time summary of a Mesh.
type Stats struct {
	Name      string
	Nodes     int
	Edges     int
	Isolated  int // nodes with no incident edge
	MaxDegree int
	Cursor    NodeID
	LastNode  NodeID // last id handed out by the node generator
	LastEdge  EdgeID // last id handed out by the edge generator
}

// Stats returns a snapshot of counts and generator positions.
// Complexity: O(V).
func (m *Mesh[N, E]) Stats() Stats {
	s := Stats{
		Name:     m.name,
		Nodes:    m.nodes.Len(),
		Edges:    m.edges.Len(),
		Cursor:   m.cursor,
		LastNode: NodeID(m.nodeIDs.last),
		LastEdge: EdgeID(m.edgeIDs.last),
	}
	m.nodes.Scan(func(_ NodeID, n *Node[N]) bool {
		d := n.edges.Len()
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		return true
	})

	return s
}

// Cursor returns the current node id, or NoNode.
func (m *Mesh[N, E]) Cursor() NodeID { return m.cursor }

// SetCursor moves the cursor to id. Only NoNode or a live id is accepted;
// any other value leaves the cursor unchanged and reports false.
func (m *Mesh[N, E]) SetCursor(id NodeID) bool {
	if id != NoNode && !m.HasNode(id) {
		return false
	}
	m.cursor = id

	return true
}

// HasNode reports whether id names a live node. NoNode is never live.
func (m *Mesh[N, E]) HasNode(id NodeID) bool {
	if id == NoNode {
		return false
	}
	_, ok := m.nodes.Get(id)

	return ok
}

// HasEdge reports whether id names a live edge.
func (m *Mesh[N, E]) HasEdge(id EdgeID) bool {
	if id == NoEdge {
		return false
	}
	_, ok := m.edges.Get(id)

	return ok
}

// Node returns the node record for id.
func (m *Mesh[N, E]) Node(id NodeID) (*Node[N], bool) { return m.nodes.Get(id) }

// Edge returns the edge record for id.
func (m *Mesh[N, E]) Edge(id EdgeID) (*Edge[E], bool) { return m.edges.Get(id) }

// NodeCount returns the number of live nodes.
func (m *Mesh[N, E]) NodeCount() int { return m.nodes.Len() }

// EdgeCount returns the number of live edges.
func (m *Mesh[N, E]) EdgeCount() int { return m.edges.Len() }

// NodeIDs returns every live node id in ascending order.
func (m *Mesh[N, E]) NodeIDs() []NodeID { return m.nodes.Keys() }

// EdgeIDs returns every live edge id in ascending order.
func (m *Mesh[N, E]) EdgeIDs() []EdgeID { return m.edges.Keys() }

// Neighbors returns the nodes adjacent to id, following its incident edges
// in ascending edge id order. A neighbor reached through several parallel
// edges is listed once; id itself is never listed.
// Complexity: O(deg(id) · log E).
func (m *Mesh[N, E]) Neighbors(id NodeID) []NodeID {
	n, ok := m.nodes.Get(id)
	if !ok {
		return nil
	}

	out := make([]NodeID, 0, n.edges.Len())
	seen := make(map[NodeID]struct{}, n.edges.Len())
	n.edges.Scan(func(eid EdgeID) bool {
		e, ok := m.edges.Get(eid)
		if !ok {
			return true
		}
		other := e.Other(id)
		if other == id || other == NoNode {
			return true
		}
		if _, dup := seen[other]; !dup {
			seen[other] = struct{}{}
			out = append(out, other)
		}
		return true
	})

	return out
}

// EdgeBetween returns the lowest edge id joining a and b, or NoEdge.
func (m *Mesh[N, E]) EdgeBetween(a, b NodeID) EdgeID {
	left, ok := m.nodes.Get(a)
	if !ok {
		return NoEdge
	}
	right, ok := m.nodes.Get(b)
	if !ok || a == b {
		return NoEdge
	}

	found := NoEdge
	left.edges.Scan(func(eid EdgeID) bool {
		if right.edges.Contains(eid) {
			found = eid
			return false
		}
		return true
	})

	return found
}

// FirstMatch returns the lowest node id satisfying match, or NoNode.
func (m *Mesh[N, E]) FirstMatch(match NodePredicate[N]) NodeID {
	if match == nil {
		return NoNode
	}

	found := NoNode
	m.nodes.Scan(func(id NodeID, n *Node[N]) bool {
		if match(n) {
			found = id
			return false
		}
		return true
	})

	return found
}

// Matches returns every node id satisfying match, in ascending order.
// The ids are collected before returning, so callers may mutate freely.
func (m *Mesh[N, E]) Matches(match NodePredicate[N]) []NodeID {
	if match == nil {
		return nil
	}

	var out []NodeID
	m.nodes.Scan(func(id NodeID, n *Node[N]) bool {
		if match(n) {
			out = append(out, id)
		}
		return true
	})

	return out
}

// Visit calls nodeFn for every node, then edgeFn for every edge, in store
// order. Either callback may be nil. Callbacks must not mutate the Mesh.
// Complexity: O(V + E).
func (m *Mesh[N, E]) Visit(nodeFn func(*Node[N]), edgeFn func(*Edge[E])) {
	if nodeFn != nil {
		m.nodes.Scan(func(_ NodeID, n *Node[N]) bool {
			nodeFn(n)
			return true
		})
	}
	if edgeFn != nil {
		m.edges.Scan(func(_ EdgeID, e *Edge[E]) bool {
			edgeFn(e)
			return true
		})
	}
}

// SetNodeValue replaces the payload of node id. Reports false if id is absent.
func (m *Mesh[N, E]) SetNodeValue(id NodeID, value N) bool {
	n, ok := m.nodes.Get(id)
	if !ok {
		return false
	}
	n.value = value

	return true
}

// SetEdgeValue replaces the payload of edge id. Reports false if id is absent.
func (m *Mesh[N, E]) SetEdgeValue(id EdgeID, value E) bool {
	e, ok := m.edges.Get(id)
	if !ok {
		return false
	}
	e.value = value

	return true
}

func (m *Mesh[N, E]) publishSize() {
	m.metrics.Size(m.name, m.nodes.Len(), m.edges.Len())
}

// Logger returns the instance logger (already tagged with the mesh name).
func (m *Mesh[N, E]) Logger() *zap.Logger { return m.log }
