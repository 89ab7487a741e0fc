package bfs

import (
	"fmt"

	"github.com/Karol03/mesh/core"
)

// side is one half of the bidirectional search.
type side struct {
	forward  bool
	depth    int
	frontier []core.NodeID
	dist     map[core.NodeID]int
	parent   map[core.NodeID]core.NodeID
}

func newSide(forward bool, roots []core.NodeID) *side {
	s := &side{
		forward: forward,
		dist:    make(map[core.NodeID]int, len(roots)),
		parent:  make(map[core.NodeID]core.NodeID),
	}
	for _, id := range roots {
		s.dist[id] = 0
		s.frontier = append(s.frontier, id)
	}

	return s
}

// meeting is the best crossing edge seen so far: near belongs to the side
// being expanded, far to the opposite side.
type meeting struct {
	near, far core.NodeID
	length    int
}

// ShortestPath returns a fewest-hop path from any node in sources to any
// node in targets, as the ordered node ids from a source to a target.
//
// Implementation:
//   - Stage 1: drop absent and duplicate ids; a node in both sets is a
//     one-node path.
//   - Stage 2: grow two BFS trees, forward from the sources and backward
//     from the targets, one full layer at a time, always growing the side
//     with the smaller frontier.
//   - Stage 3: during a layer, every hop landing on a node the other side
//     already reached is a candidate; the shortest candidate of the layer
//     wins (first seen on ties).
//   - Stage 4: rebuild by walking the forward parents from the meeting
//     back to a source (reversed) and the backward parents on to a target.
//
// Errors:
//   - ErrMeshNil, ErrOptionViolation.
//   - ErrNoPath when either set has no live node, when the sets are not
//     connected, or when every path is longer than WithMaxDepth.
//
// Determinism: sources and targets keep their given order; neighbors follow
// incident-edge order.
// Complexity: O(V + E) time and memory.
func ShortestPath[N, E core.Payload](m *core.Mesh[N, E], sources, targets []core.NodeID, opts ...Option) ([]core.NodeID, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Stage 1: sanitize.
	src := liveUnique(m, sources)
	dst := liveUnique(m, targets)
	if len(src) == 0 || len(dst) == 0 {
		return nil, fmt.Errorf("%w: %d live sources, %d live targets", ErrNoPath, len(src), len(dst))
	}
	isTarget := make(map[core.NodeID]bool, len(dst))
	for _, id := range dst {
		isTarget[id] = true
	}
	for _, id := range src {
		if isTarget[id] {
			return []core.NodeID{id}, nil
		}
	}

	fwd := newSide(true, src)
	bwd := newSide(false, dst)

	// Stage 2-3: layer by layer.
	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		if o.MaxDepth > 0 && fwd.depth+bwd.depth >= o.MaxDepth {
			break
		}
		grow, other := fwd, bwd
		if len(bwd.frontier) < len(fwd.frontier) {
			grow, other = bwd, fwd
		}
		o.OnExpand(grow.forward, grow.depth, len(grow.frontier))

		best, found := expandLayer(m, &o, grow, other)
		if !found {
			continue
		}
		if o.MaxDepth > 0 && best.length > o.MaxDepth {
			break
		}

		// Stage 4: rebuild with the meeting edge oriented source → target.
		left, right := best.near, best.far
		if !grow.forward {
			left, right = right, left
		}
		path := reversedChain(fwd.parent, left)

		return append(path, chain(bwd.parent, right)...), nil
	}

	return nil, ErrNoPath
}

// expandLayer grows s by one full layer and reports the shortest crossing
// into other found on the way.
func expandLayer(m neighborer, o *BFSOptions, s, other *side) (meeting, bool) {
	var (
		best  meeting
		found bool
		next  []core.NodeID
	)
	for _, u := range s.frontier {
		for _, v := range m.Neighbors(u) {
			if s.forward && !o.FilterNeighbor(u, v) || !s.forward && !o.FilterNeighbor(v, u) {
				continue
			}
			if dv, ok := other.dist[v]; ok {
				length := s.dist[u] + 1 + dv
				if !found || length < best.length {
					best = meeting{near: u, far: v, length: length}
					found = true
				}
				continue
			}
			if _, seen := s.dist[v]; seen {
				continue
			}
			s.dist[v] = s.dist[u] + 1
			s.parent[v] = u
			next = append(next, v)
		}
	}
	s.frontier = next
	s.depth++

	return best, found
}

// liveUnique keeps the first occurrence of every live id.
func liveUnique(m neighborer, ids []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, 0, len(ids))
	seen := make(map[core.NodeID]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !m.HasNode(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}
