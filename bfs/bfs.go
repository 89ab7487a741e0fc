// Package bfs provides breadth-first search over a core.Mesh,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/Karol03/mesh/core"
)

// neighborer is the part of a mesh the searches read.
type neighborer interface {
	HasNode(id core.NodeID) bool
	Neighbors(id core.NodeID) []core.NodeID
}

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	mesh    neighborer
	opts    BFSOptions
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on m starting from start,
// applying any number of functional Options.
// Returns ErrMeshNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[N, E core.Payload](m *core.Mesh[N, E], start core.NodeID, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !m.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := m.NodeCount()
	w := &walker{
		mesh:    m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor in incident-edge order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.mesh.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
