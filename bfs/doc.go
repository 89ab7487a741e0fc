// Package bfs provides breadth-first search over a core.Mesh: a single-source
// traversal with distances and parent links, and a bidirectional
// multi-source/multi-target shortest path.
//
// What
//
//   - BFS(m, start, opts...) explores nodes in non-decreasing distance
//     (edge count) from start and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: node → distance from start
//   - Parent: node → predecessor in the BFS tree
//   - ShortestPath(m, sources, targets, opts...) returns a fewest-hop path
//     from any source to any target. It grows two BFS trees toward each
//     other one full layer at a time, always growing the smaller frontier,
//     and rebuilds the path from both parent maps.
//
// Determinism
//
//	core.Mesh.Neighbors follows incident edges in ascending edge id order,
//	so both searches are fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(m, start, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(dest)
//
//	path, err := bfs.ShortestPath(m, []core.NodeID{a}, m.Matches(isExit))
//	if errors.Is(err, bfs.ErrNoPath) {
//		// unreachable
//	}
//
// Options
//
//   - WithMaxDepth(d):        depth limit for BFS, hop limit for ShortestPath.
//   - WithFilterNeighbor(fn): skip hops for which fn(curr, neighbor)==false.
//   - WithOnVisit(fn):        BFS visit hook; returning an error aborts.
//   - WithOnExpand(fn):       ShortestPath layer hook.
//
// Errors
//
//   - ErrMeshNil         if the mesh pointer is nil.
//   - ErrStartNotFound   if the BFS start node does not exist.
//   - ErrNoPath          if no path exists (or none within the hop limit).
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
package bfs
