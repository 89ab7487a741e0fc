// SPDX-License-Identifier: MIT
// File: ids.go
// Role: Per-instance monotonic id generation.
// Determinism:
//   - The first id handed out is 1; ids grow by one and are never reused,
//     not even after Clear.

package core

// idGenerator hands out positive, strictly increasing ids. The zero value
// is ready to use.
type idGenerator struct {
	last uint32
}

// next returns the following id.
func (g *idGenerator) next() uint32 {
	g.last++
	return g.last
}

func (m *Mesh[N, E]) newNodeID() NodeID { return NodeID(m.nodeIDs.next()) }

func (m *Mesh[N, E]) newEdgeID() EdgeID { return EdgeID(m.edgeIDs.next()) }
