// Package dfs implements depth-first search traversal, connected-component
// collection, and predicate-sequence walks on a core.Mesh.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - Reachable / Components: the nodes and edges of one component, or the
//     partition of the whole mesh.
//   - Walk: the first walk whose i-th node satisfies the i-th predicate,
//     found by backtracking. WithUnique forbids revisiting a node.
//
// Key Types:
//
//   - Option: functional options for DFS and Walk
//   - DFSOptions: hooks, MaxDepth, FilterNeighbor, FullTraversal, Unique
//   - DFSResult: post-order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS, Reachable, Components: Time O(V+E), Memory O(V)
//   - Walk: exponential in the pattern length in the worst case; recursion
//     depth equals the pattern length.
//
// Errors:
//
//   - ErrMeshNil        mesh pointer is nil
//   - ErrStartNotFound  start node not in the mesh
//   - ErrEmptyPattern   Walk called with no predicates
//   - ErrNoWalk         no walk matches the pattern
//   - hook errors       propagated from OnVisit or OnExit
package dfs
