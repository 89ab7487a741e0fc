// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// shape.go — deterministic topology fixtures grown through a Builder.
//
// Design contract:
//   • A Shape only describes topology: it appends nodes (by index) and index
//     pairs to a sketch. Payloads come from Labels when the sketch is grown.
//   • Shapes compose by concatenation; each one adds its own nodes, so
//     BuildMesh(…, Chain(3), Star(4)) yields two components.
//   • Determinism: same shapes, options and seed ⇒ identical meshes, with
//     node ids in sketch index order and edge ids in emission order.
//   • Shapes validate early and return wrapped sentinels; they never panic.

package builder

import (
	"fmt"
	"strconv"

	"github.com/Karol03/mesh/core"
)

// Shape appends one topology to a sketch.
type Shape func(s *sketch, cfg shapeConfig) error

// sketch is the payload-free topology assembled by shapes.
type sketch struct {
	nodes int
	pairs [][2]int
}

// grow reserves n new node indices and returns the first one.
func (s *sketch) grow(n int) int {
	base := s.nodes
	s.nodes += n

	return base
}

func (s *sketch) link(u, v int) {
	s.pairs = append(s.pairs, [2]int{u, v})
}

// Labels renders sketch indices into payloads. Nil functions yield zero values.
type Labels[N, E core.Payload] struct {
	Node func(i int) N
	Edge func(u, v int) E
}

func (l Labels[N, E]) node(i int) N {
	if l.Node == nil {
		var zero N
		return zero
	}

	return l.Node(i)
}

func (l Labels[N, E]) edge(u, v int) E {
	if l.Edge == nil {
		var zero E
		return zero
	}

	return l.Edge(u, v)
}

// DescriptionLabels names node i "i" and the edge between u and v "u-v".
func DescriptionLabels() Labels[core.Description, core.Description] {
	return Labels[core.Description, core.Description]{
		Node: func(i int) core.Description { return core.Description(strconv.Itoa(i)) },
		Edge: func(u, v int) core.Description {
			return core.Description(strconv.Itoa(u) + "-" + strconv.Itoa(v))
		},
	}
}

// BuildMesh creates a Mesh with mopts and grows every shape into it.
// Any shape error is wrapped as "BuildMesh: %w" and no mesh is returned.
func BuildMesh[N, E core.Payload](labels Labels[N, E], mopts []core.Option, sopts []ShapeOption, shapes ...Shape) (*core.Mesh[N, E], error) {
	b := New(core.NewMesh[N, E](mopts...))
	if err := Grow(b, labels, sopts, shapes...); err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	return b.Mesh(), nil
}

// Grow sketches every shape, then creates the sketched nodes as isolated
// nodes through b and ties the sketched pairs. The cursor ends on the last
// created node.
//
// Shapes are validated before anything is created; a failure while tying
// (ErrConstructFailed) leaves the nodes created so far in place.
func Grow[N, E core.Payload](b *Builder[N, E], labels Labels[N, E], sopts []ShapeOption, shapes ...Shape) error {
	cfg := newShapeConfig(sopts...)

	var s sketch
	for i, fn := range shapes {
		if fn == nil {
			return fmt.Errorf("Grow: nil shape at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&s, cfg); err != nil {
			return err
		}
	}

	m := b.Mesh()
	ids := make([]core.NodeID, s.nodes)
	for i := range ids {
		m.SetCursor(core.NoNode)
		ids[i] = b.Create(labels.node(i)).CurrentID()
	}
	for _, p := range s.pairs {
		if m.Tie(ids[p[0]], ids[p[1]], labels.edge(p[0], p[1])) == core.NoEdge {
			return fmt.Errorf("Grow: tie %d-%d: %w", p[0], p[1], ErrConstructFailed)
		}
	}

	return nil
}
