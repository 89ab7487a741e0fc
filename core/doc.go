// SPDX-License-Identifier: MIT

// Package core provides Mesh, an in-memory undirected graph of id-addressed
// nodes and edges with a cursor and connectivity-preserving deletion.
//
// A Mesh[N, E] owns every node and edge. Nodes carry a payload of type N and
// the set of their incident edge ids; edges carry a payload of type E and
// their two endpoints. Nodes never point at other nodes, so adjacency is
// always resolved through the edge table.
//
// Identity:
//
//   - NodeID and EdgeID are uint32 values from two per-instance generators
//     that start at 1. Zero (NoNode, NoEdge) means "none".
//   - Ids are never reused by a Mesh, not even after Clear.
//
// Cursor:
//
//   - Attach links the cursor to a new node and moves the cursor onto it, so
//     successive Attach calls grow a chain.
//   - The cursor is always NoNode or a live id; Detach resets it when its
//     node disappears.
//
// Detach and repair:
//
//	Detach(id) removes a node and its incident edges. When the node had two or
//	more neighbors, every pair of former neighbors that can no longer reach
//	each other is resolved by a bidirectional breadth-first probe: the side
//	that runs out of nodes first (the smaller branch) is erased entirely.
//	After any Detach the former neighbors that survive form one component.
//
// Failure policy:
//
//   - Structural preconditions (absent ids, self ties, already-adjacent
//     nodes) make operations silent no-ops that return NoNode/NoEdge/nil.
//   - InsertEdge, used by loaders, returns ErrNodeNotFound or ErrSelfLoop.
//   - CheckInvariants reports ErrInvariant when incidence and endpoints
//     disagree.
//
// Observability:
//
//	WithLogger attaches a *zap.Logger; mutations are logged at debug level.
//	WithMetrics attaches a *metrics.Collector (Prometheus).
//
// Concurrency:
//
//	Mesh is not safe for concurrent use. Guard the whole store with one lock.
//
// Quick example:
//
//	m := core.NewMesh[core.Description, core.Description]()
//	a := m.Attach("a", "")
//	b := m.Attach("b", "a-b")
//	m.Detach(a)
//	fmt.Println(m.NodeCount(), m.Cursor() == b)
package core
