// SPDX-License-Identifier: MIT
// Package: mesh/pack
//
// codec.go — payload decoding and the shared loader.
//
// Writers encode payloads with their String method. Loaders need the reverse
// mapping, supplied as a Codec. Both formats feed records to a loader that
// builds a fresh Mesh and swaps it into the target only after the last
// record was accepted.

package pack

import (
	"fmt"

	"github.com/Karol03/mesh/core"
)

// Codec decodes payload strings back into node and edge payloads.
type Codec[N, E core.Payload] struct {
	Node func(string) (N, error)
	Edge func(string) (E, error)
}

// Descriptions returns the identity codec for core.Description payloads.
func Descriptions() Codec[core.Description, core.Description] {
	decode := func(s string) (core.Description, error) { return core.Description(s), nil }

	return Codec[core.Description, core.Description]{Node: decode, Edge: decode}
}

func (c Codec[N, E]) validate() error {
	if c.Node == nil || c.Edge == nil {
		return ErrCodecIncomplete
	}

	return nil
}

// loader accumulates decoded records into a fresh Mesh, remapping pack ids
// through the fresh Mesh's generators.
type loader[N, E core.Payload] struct {
	codec Codec[N, E]
	fresh *core.Mesh[N, E]
	remap map[uint32]core.NodeID
	nodes int
	edges int
}

// maxPrealloc caps allocations sized from untrusted header counts.
const maxPrealloc = 1 << 16

func newLoader[N, E core.Payload](codec Codec[N, E], nodes, edges int) *loader[N, E] {
	return &loader[N, E]{
		codec: codec,
		fresh: core.NewMesh[N, E](),
		remap: make(map[uint32]core.NodeID, min(nodes, maxPrealloc)),
		nodes: nodes,
		edges: edges,
	}
}

func (l *loader[N, E]) node(i int, id uint32, payload string) error {
	if _, dup := l.remap[id]; dup {
		return recordErr(KindNode, i, l.nodes, FieldID, fmt.Errorf("%w: duplicate id %d", ErrMalformed, id))
	}
	value, err := l.codec.Node(payload)
	if err != nil {
		return recordErr(KindNode, i, l.nodes, FieldDescription, fmt.Errorf("%w: %w", ErrMalformed, err))
	}
	l.remap[id] = l.fresh.InsertNode(value)

	return nil
}

func (l *loader[N, E]) edge(i int, id, first, second uint32, payload string) error {
	a, ok := l.remap[first]
	if !ok {
		return recordErr(KindEdge, i, l.edges, FieldFirst, fmt.Errorf("%w: edge %d names node %d", ErrUnmappedEndpoint, id, first))
	}
	b, ok := l.remap[second]
	if !ok {
		return recordErr(KindEdge, i, l.edges, FieldSecond, fmt.Errorf("%w: edge %d names node %d", ErrUnmappedEndpoint, id, second))
	}
	value, err := l.codec.Edge(payload)
	if err != nil {
		return recordErr(KindEdge, i, l.edges, FieldDescription, fmt.Errorf("%w: %w", ErrMalformed, err))
	}
	if _, err := l.fresh.InsertEdge(a, b, value); err != nil {
		return recordErr(KindEdge, i, l.edges, FieldSecond, fmt.Errorf("%w: %w", ErrMalformed, err))
	}

	return nil
}

// commit replaces the contents of m with the loaded mesh.
func (l *loader[N, E]) commit(m *core.Mesh[N, E]) {
	m.Swap(l.fresh)
}
