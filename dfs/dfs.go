// Package dfs implements depth-first search (single-source and forest) on core.Mesh.
//
// Key features:
//   - DFS(m, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Reachable / Components: connected-component collection
//   - Walk: predicate-sequence matching with backtracking
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"
	"slices"

	"github.com/Karol03/mesh/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[N, E core.Payload] struct {
	mesh *core.Mesh[N, E] // underlying mesh
	opts DFSOptions       // traversal options
	res  *DFSResult       // result collector
}

// DFS performs depth-first search on m. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise it starts only from start.
// Returns DFSResult or the error of an aborting hook.
func DFS[N, E core.Payload](m *core.Mesh[N, E], start core.NodeID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input mesh
	if m == nil {
		return nil, ErrMeshNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !m.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := m.NodeCount()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make(map[core.NodeID]int, n),
		Parent:  make(map[core.NodeID]core.NodeID, n),
		Visited: make(map[core.NodeID]bool, n),
	}
	walker := &dfsWalker[N, E]{mesh: m, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range m.NodeIDs() {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits node id at the given depth, recursing to neighbors.
func (w *dfsWalker[N, E]) traverse(id core.NodeID, depth int) error {
	// 1. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Explore each neighbor in incident-edge order
	for _, nid := range w.mesh.Neighbors(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Reachable returns every node reachable from root in discovery (pre-order)
// sequence, and every edge between them in ascending id order.
// An absent root yields nil slices.
func Reachable[N, E core.Payload](m *core.Mesh[N, E], root core.NodeID) ([]core.NodeID, []core.EdgeID) {
	if m == nil || !m.HasNode(root) {
		return nil, nil
	}

	var nodes []core.NodeID
	_, _ = DFS(m, root, WithOnVisit(func(id core.NodeID) error {
		nodes = append(nodes, id)
		return nil
	}))

	return nodes, incidentEdges(m, nodes)
}

// Components partitions the mesh into connected components. Components are
// ordered by their lowest node id; each lists its nodes in discovery order.
// Complexity: O(V + E).
func Components[N, E core.Payload](m *core.Mesh[N, E]) [][]core.NodeID {
	if m == nil {
		return nil
	}

	var out [][]core.NodeID
	seen := make(map[core.NodeID]bool, m.NodeCount())
	for _, id := range m.NodeIDs() {
		if seen[id] {
			continue
		}
		nodes, _ := Reachable(m, id)
		for _, n := range nodes {
			seen[n] = true
		}
		out = append(out, nodes)
	}

	return out
}

// incidentEdges collects the distinct edges touching nodes, ascending.
func incidentEdges[N, E core.Payload](m *core.Mesh[N, E], nodes []core.NodeID) []core.EdgeID {
	seen := make(map[core.EdgeID]bool)
	var out []core.EdgeID
	for _, id := range nodes {
		n, _ := m.Node(id)
		for _, eid := range n.Edges() {
			if !seen[eid] {
				seen[eid] = true
				out = append(out, eid)
			}
		}
	}
	slices.Sort(out)

	return out
}
