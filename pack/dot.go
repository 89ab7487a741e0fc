// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// dot.go — Graphviz export through gonum.

package pack

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/Karol03/mesh/core"
)

// dotNode is a mesh node as gonum sees it: the mesh id plus a label.
type dotNode struct {
	id    int64
	label string
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

type dotEdge struct {
	from, to dotNode
	label    string
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node   { return e.to }

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{from: e.to, to: e.from, label: e.label}
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: e.label}}
}

// MarshalDOT renders m as an undirected DOT graph called name. Nodes keep
// their mesh ids and carry their payload as label; so do edges. Edges that
// join the same pair of nodes (possible only in loaded packs) collapse into
// one.
func MarshalDOT[N, E core.Payload](m *core.Mesh[N, E], name string) ([]byte, error) {
	if m == nil {
		return nil, ErrMeshNil
	}

	g := simple.NewUndirectedGraph()
	nodes := make(map[core.NodeID]dotNode, m.NodeCount())
	m.Visit(
		func(n *core.Node[N]) {
			dn := dotNode{id: int64(n.ID()), label: n.Value().String()}
			nodes[n.ID()] = dn
			g.AddNode(dn)
		},
		func(e *core.Edge[E]) {
			a, b := e.Endpoints()
			g.SetEdge(dotEdge{from: nodes[a], to: nodes[b], label: e.Value().String()})
		},
	)

	out, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("pack: marshal dot: %w", err)
	}

	return out, nil
}
