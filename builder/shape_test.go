package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karol03/mesh/builder"
	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/dfs"
)

// TestShapes_Functional runs table-driven checks for each shape.
func TestShapes_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shape        builder.Shape
		wantV, wantE int
		components   int
	}{
		{"Chain(1)", builder.Chain(1), 1, 0, 1},
		{"Chain(4)", builder.Chain(4), 4, 3, 1},
		{"Ring(5)", builder.Ring(5), 5, 5, 1},
		{"Star(4)", builder.Star(4), 4, 3, 1},
		{"Wheel(5)", builder.Wheel(5), 5, 8, 1},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, 1},
		{"Complete(4)", builder.Complete(4), 4, 6, 1},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), 5, 10, 1},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), 5, 0, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(builder.DescriptionLabels(), nil, nil, tc.shape)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.NodeCount(), "nodes")
			assert.Equal(t, tc.wantE, m.EdgeCount(), "edges")
			assert.Len(t, dfs.Components(m), tc.components)
			assert.NoError(t, m.CheckInvariants())
		})
	}
}

func TestShapes_ComposeAndLabel(t *testing.T) {
	m, err := builder.BuildMesh(builder.DescriptionLabels(), nil, nil, builder.Chain(3), builder.Star(4))
	require.NoError(t, err)

	require.Equal(t, [][]core.NodeID{{1, 2, 3}, {4, 5, 6, 7}}, dfs.Components(m))
	require.Equal(t, core.NodeID(7), m.Cursor())

	n, _ := m.Node(4)
	require.Equal(t, desc("3"), n.Value())
	e, _ := m.Edge(3)
	require.Equal(t, desc("3-4"), e.Value())
	a, b := e.Endpoints()
	require.Equal(t, []core.NodeID{4, 5}, []core.NodeID{a, b})
}

func TestShapes_ZeroLabels(t *testing.T) {
	m, err := builder.BuildMesh(builder.Labels[desc, desc]{}, nil, nil, builder.Chain(2))
	require.NoError(t, err)

	n, _ := m.Node(1)
	require.Equal(t, desc(""), n.Value())
}

func TestGrow_ExistingBuilder(t *testing.T) {
	b := chain("root")
	require.NoError(t, builder.Grow(b, builder.DescriptionLabels(), nil, builder.Ring(3)))

	m := b.Mesh()
	require.Equal(t, 4, m.NodeCount())
	require.Len(t, dfs.Components(m), 2)
	require.Equal(t, core.NodeID(4), b.CurrentID())
}

func TestShapes_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		shape builder.Shape
		want  error
	}{
		{"Chain(0)", builder.Chain(0), builder.ErrTooFewNodes},
		{"Ring(2)", builder.Ring(2), builder.ErrTooFewNodes},
		{"Star(1)", builder.Star(1), builder.ErrTooFewNodes},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewNodes},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewNodes},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewNodes},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewNodes},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, .5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMesh(builder.DescriptionLabels(), nil, nil, builder.Chain(2), tc.shape)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	edges := func(opt builder.ShapeOption) []string {
		m, err := builder.BuildMesh(builder.DescriptionLabels(), nil, []builder.ShapeOption{opt},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)

		var out []string
		m.Visit(nil, func(e *core.Edge[desc]) { out = append(out, e.Value().String()) })
		return out
	}

	first := edges(builder.WithSeed(42))
	require.Equal(t, first, edges(builder.WithSeed(42)))
	require.Equal(t, first, edges(builder.WithRand(rand.New(rand.NewSource(42)))))
	require.Panics(t, func() { builder.WithRand(nil) })
}
