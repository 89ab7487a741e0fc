package dfs

import (
	"fmt"

	"github.com/Karol03/mesh/core"
)

// walkState carries one Walk search.
type walkState[N, E core.Payload] struct {
	mesh    *core.Mesh[N, E]
	pattern []core.NodePredicate[N]
	unique  bool
	path    []core.NodeID
	onPath  map[core.NodeID]int
}

// Walk finds the first node sequence v0, v1, ..., vk-1 such that pattern[i]
// accepts vi and consecutive nodes are adjacent. A nil entry in pattern
// accepts any node.
//
// Search order: roots in ascending id order, then neighbors in incident-edge
// order at every step, backtracking on dead ends. Without WithUnique a walk
// may step back onto nodes it already used; with it, every node appears at
// most once.
//
// Errors:
//   - ErrMeshNil, ErrEmptyPattern.
//   - ErrNoWalk when nothing matches.
//
// Complexity: O(V · d^(k-1)) worst case for max degree d; the recursion
// depth is bounded by len(pattern).
func Walk[N, E core.Payload](m *core.Mesh[N, E], pattern []core.NodePredicate[N], opts ...Option) ([]core.NodeID, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &walkState[N, E]{
		mesh:    m,
		pattern: pattern,
		unique:  o.Unique,
		path:    make([]core.NodeID, 0, len(pattern)),
		onPath:  make(map[core.NodeID]int, len(pattern)),
	}
	for _, root := range m.NodeIDs() {
		if s.step(root) {
			return s.path, nil
		}
	}

	return nil, fmt.Errorf("%w: %d predicates", ErrNoWalk, len(pattern))
}

// step tries id as the next element of the walk. On success the walk is
// left complete in s.path; on failure s.path is restored.
func (s *walkState[N, E]) step(id core.NodeID) bool {
	// 1. Reject revisits in unique mode
	if s.unique && s.onPath[id] > 0 {
		return false
	}

	// 2. Match the predicate for this position
	i := len(s.path)
	if p := s.pattern[i]; p != nil {
		n, ok := s.mesh.Node(id)
		if !ok || !p(n) {
			return false
		}
	}

	// 3. Push
	s.path = append(s.path, id)
	s.onPath[id]++
	if len(s.path) == len(s.pattern) {
		return true
	}

	// 4. Extend through neighbors
	for _, next := range s.mesh.Neighbors(id) {
		if s.step(next) {
			return true
		}
	}

	// 5. Backtrack
	s.path = s.path[:i]
	s.onPath[id]--

	return false
}
