// SPDX-License-Identifier: MIT
// File: invariants.go
// Role: Topology self-check used by tests and diagnostics.

package core

import "fmt"

// CheckInvariants verifies that node incidence and edge endpoints agree and
// that the cursor is unset or live. The first violation found is returned,
// wrapped around ErrInvariant.
// Complexity: O((V + E) · log E).
func (m *Mesh[N, E]) CheckInvariants() error {
	var err error

	m.nodes.Scan(func(id NodeID, n *Node[N]) bool {
		if n.id != id {
			err = fmt.Errorf("node %d stored under key %d: %w", n.id, id, ErrInvariant)
			return false
		}
		n.edges.Scan(func(eid EdgeID) bool {
			e, ok := m.edges.Get(eid)
			switch {
			case !ok:
				err = fmt.Errorf("node %d lists missing edge %d: %w", id, eid, ErrInvariant)
			case !e.Touches(id):
				err = fmt.Errorf("node %d lists edge %d which joins %d and %d: %w",
					id, eid, e.first, e.second, ErrInvariant)
			}
			return err == nil
		})
		return err == nil
	})
	if err != nil {
		return err
	}

	m.edges.Scan(func(eid EdgeID, e *Edge[E]) bool {
		if e.first == e.second {
			err = fmt.Errorf("edge %d is a self loop on %d: %w", eid, e.first, ErrInvariant)
			return false
		}
		for _, end := range [2]NodeID{e.first, e.second} {
			n, ok := m.nodes.Get(end)
			if !ok {
				err = fmt.Errorf("edge %d names missing node %d: %w", eid, end, ErrInvariant)
				return false
			}
			if !n.edges.Contains(eid) {
				err = fmt.Errorf("node %d does not list its edge %d: %w", end, eid, ErrInvariant)
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}

	if m.cursor != NoNode && !m.HasNode(m.cursor) {
		return fmt.Errorf("cursor %d names no node: %w", m.cursor, ErrInvariant)
	}

	return nil
}
