// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/Karol03/mesh/core"
)

type (
	desc = core.Description
	mesh = core.Mesh[core.Description, core.Description]
)

const noEdgeValue desc = ""

func newMesh(opts ...core.Option) *mesh {
	return core.NewMesh[desc, desc](opts...)
}

// star builds a center node tied to one fresh node per label and returns
// the center id followed by the leaf ids. The cursor ends on the last leaf.
func star(t *testing.T, m *mesh, center desc, leaves ...desc) (core.NodeID, []core.NodeID) {
	t.Helper()
	h := m.Attach(center, noEdgeValue)
	ids := make([]core.NodeID, 0, len(leaves))
	for _, l := range leaves {
		require.True(t, m.SetCursor(h))
		ids = append(ids, m.Attach(l, desc(string(center)+"-"+string(l))))
	}

	return h, ids
}

// chainFrom attaches labels one after another starting at from.
func chainFrom(t *testing.T, m *mesh, from core.NodeID, labels ...desc) []core.NodeID {
	t.Helper()
	require.True(t, m.SetCursor(from))
	ids := make([]core.NodeID, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, m.Attach(l, noEdgeValue))
	}

	return ids
}

// components counts connected components with gonum as an independent oracle.
func components(m *mesh) int {
	g := simple.NewUndirectedGraph()
	m.Visit(
		func(n *core.Node[desc]) { g.AddNode(simple.Node(n.ID())) },
		func(e *core.Edge[desc]) {
			a, b := e.Endpoints()
			g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
		},
	)

	return len(topo.ConnectedComponents(g))
}

// sameComponent reports whether every id in ids lies in one gonum component.
func sameComponent(m *mesh, ids []core.NodeID) bool {
	g := simple.NewUndirectedGraph()
	m.Visit(
		func(n *core.Node[desc]) { g.AddNode(simple.Node(n.ID())) },
		func(e *core.Edge[desc]) {
			a, b := e.Endpoints()
			g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
		},
	)
	for _, cc := range topo.ConnectedComponents(g) {
		in := make(map[int64]bool, len(cc))
		for _, n := range cc {
			in[n.ID()] = true
		}
		if in[int64(ids[0])] {
			for _, id := range ids[1:] {
				if !in[int64(id)] {
					return false
				}
			}
			return true
		}
	}

	return false
}

func requireConsistent(t *testing.T, m *mesh) {
	t.Helper()
	require.NoError(t, m.CheckInvariants())
}
