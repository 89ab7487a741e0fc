// SPDX-License-Identifier: MIT

package core_test

import (
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/metrics"
)

// DetachSuite covers node removal and the connectivity repair pass.
type DetachSuite struct {
	suite.Suite
	m *mesh
}

func (s *DetachSuite) SetupTest() {
	s.m = newMesh()
}

func (s *DetachSuite) TestAbsentIdIsNoop() {
	a := s.m.Attach("a", "")
	s.m.Attach("b", "ab")

	s.m.Detach(42)
	s.m.Detach(core.NoNode)
	s.Require().Equal(2, s.m.NodeCount())
	s.Require().Equal(1, s.m.EdgeCount())

	s.m.Detach(a)
	s.m.Detach(a)
	s.Require().Equal(1, s.m.NodeCount())
	s.Require().Equal(0, s.m.EdgeCount())
	s.Require().NoError(s.m.CheckInvariants())
}

func (s *DetachSuite) TestDegreeZero() {
	a := s.m.Attach("a", "")
	s.m.Detach(a)
	s.Require().Equal(0, s.m.NodeCount())
	s.Require().Equal(core.NoNode, s.m.Cursor())
}

func (s *DetachSuite) TestDegreeOne() {
	ids := chainFrom(s.T(), s.m, s.m.Attach("a", ""), "b", "c")
	b, c := ids[0], ids[1]

	s.m.Detach(c)
	s.Require().Equal(2, s.m.NodeCount())
	s.Require().Equal(1, s.m.EdgeCount())
	s.Require().Equal(core.NoNode, s.m.Cursor(), "cursor was the detached node")

	n, ok := s.m.Node(b)
	s.Require().True(ok)
	s.Require().Equal(1, n.Degree())
	s.Require().NoError(s.m.CheckInvariants())
}

// A star whose leaves cannot reach each other keeps exactly one leaf.
func (s *DetachSuite) TestStarKeepsOneBranch() {
	h, leaves := star(s.T(), s.m, "h", "a", "b", "c")

	s.m.Detach(h)
	s.Require().Equal(1, s.m.NodeCount())
	s.Require().Equal(0, s.m.EdgeCount())
	// equal-size branches: the later one survives each probe
	s.Require().True(s.m.HasNode(leaves[2]))
	s.Require().Equal(leaves[2], s.m.Cursor())
	s.Require().NoError(s.m.CheckInvariants())
}

func (s *DetachSuite) TestSmallerBranchIsPurged() {
	h, leaves := star(s.T(), s.m, "h", "a", "b")
	tail := chainFrom(s.T(), s.m, leaves[1], "b1", "b2")

	s.m.Detach(h)
	s.Require().False(s.m.HasNode(leaves[0]))
	s.Require().True(s.m.HasNode(leaves[1]))
	for _, id := range tail {
		s.Require().True(s.m.HasNode(id))
	}
	s.Require().Equal(3, s.m.NodeCount())
	s.Require().Equal(2, s.m.EdgeCount())
	s.Require().NoError(s.m.CheckInvariants())
}

func (s *DetachSuite) TestSmallerRightBranchIsPurged() {
	h, leaves := star(s.T(), s.m, "h", "a", "b")
	tail := chainFrom(s.T(), s.m, leaves[0], "a1", "a2")

	s.m.Detach(h)
	s.Require().True(s.m.HasNode(leaves[0]))
	s.Require().False(s.m.HasNode(leaves[1]))
	s.Require().Equal(tail[1], s.m.Cursor())
	s.Require().Equal(3, s.m.NodeCount())
	s.Require().NoError(s.m.CheckInvariants())
}

// Star with a side edge a-b: a and b stay connected, isolated c is purged.
func (s *DetachSuite) TestSideEdgeKeepsConnectedLeaves() {
	h, leaves := star(s.T(), s.m, "h", "a", "b", "c")
	a, b, c := leaves[0], leaves[1], leaves[2]
	s.Require().NotEqual(core.NoEdge, s.m.Tie(a, b, "a-b"))

	s.m.Detach(h)
	s.Require().True(s.m.HasNode(a))
	s.Require().True(s.m.HasNode(b))
	s.Require().False(s.m.HasNode(c))
	s.Require().Equal(core.NoNode, s.m.Cursor(), "cursor node c was purged")
	s.Require().Equal(2, s.m.NodeCount())
	s.Require().Equal(1, s.m.EdgeCount())
	s.Require().NotEqual(core.NoEdge, s.m.EdgeBetween(a, b))
	s.Require().NoError(s.m.CheckInvariants())
}

// When both probes exhaust in the same round the right branch survives.
func (s *DetachSuite) TestSimultaneousExhaustionKeepsRight() {
	h, leaves := star(s.T(), s.m, "h", "a", "b", "c")
	a, b, c := leaves[0], leaves[1], leaves[2]
	s.m.Tie(a, b, "a-b")
	c1 := chainFrom(s.T(), s.m, c, "c1")[0]

	s.m.Detach(h)
	s.Require().False(s.m.HasNode(a))
	s.Require().False(s.m.HasNode(b))
	s.Require().True(s.m.HasNode(c))
	s.Require().True(s.m.HasNode(c1))
	s.Require().Equal(2, s.m.NodeCount())
	s.Require().NoError(s.m.CheckInvariants())
}

// A cycle through the detached node keeps the whole ring.
func (s *DetachSuite) TestCycleSurvives() {
	ring := chainFrom(s.T(), s.m, s.m.Attach("r0", ""), "r1", "r2", "r3", "r4")
	s.m.Tie(ring[len(ring)-1], 1, "close")

	s.m.Detach(ring[1])
	s.Require().Equal(4, s.m.NodeCount())
	s.Require().Equal(3, s.m.EdgeCount())
	s.Require().NoError(s.m.CheckInvariants())
}

func (s *DetachSuite) TestDetachCursorAndWhere() {
	s.m.Attach("x", "")
	s.m.Attach("y", "")
	s.m.Attach("x", "")

	s.m.DetachCursor()
	s.Require().Equal(2, s.m.NodeCount())
	s.Require().Equal(core.NoNode, s.m.Cursor())
	s.m.DetachCursor()
	s.Require().Equal(2, s.m.NodeCount(), "unset cursor is a no-op")

	s.m.DetachWhere(core.ValueIs[desc]("x"))
	s.Require().Equal([]core.NodeID{2}, s.m.NodeIDs())
	s.m.DetachWhere(nil)
	s.Require().Equal(1, s.m.NodeCount())
}

func (s *DetachSuite) TestDetachAllSkipsPurgedIds() {
	h, leaves := star(s.T(), s.m, "h", "a", "b", "c")

	s.Require().NotPanics(func() { s.m.DetachAll(h, leaves[0], leaves[1]) })
	s.Require().Equal([]core.NodeID{leaves[2]}, s.m.NodeIDs())
}

func TestDetachSuite(t *testing.T) {
	suite.Run(t, new(DetachSuite))
}

// Random graphs: after Detach(v) the surviving former neighbors share one
// component and the component count drops only for isolated v.
func TestDetach_ComponentOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(711))

	for round := 0; round < 200; round++ {
		m := newMesh()
		n := 3 + rng.Intn(12)
		for i := 0; i < n; i++ {
			m.InsertNode("v")
		}
		edges := rng.Intn(2 * n)
		for i := 0; i < edges; i++ {
			a := core.NodeID(1 + rng.Intn(n))
			b := core.NodeID(1 + rng.Intn(n))
			m.Tie(a, b, "e")
		}

		victim := core.NodeID(1 + rng.Intn(n))
		neighbors := m.Neighbors(victim)
		before := components(m)

		m.Detach(victim)

		require.NoError(t, m.CheckInvariants())
		require.False(t, m.HasNode(victim))

		var survivors []core.NodeID
		for _, id := range neighbors {
			if m.HasNode(id) {
				survivors = append(survivors, id)
			}
		}
		if len(neighbors) == 0 {
			require.Equal(t, before-1, components(m), "round %d", round)
			continue
		}
		require.NotEmpty(t, survivors, "round %d: some branch must survive", round)
		require.True(t, sameComponent(m, survivors), "round %d", round)
		require.Equal(t, before, components(m), "round %d", round)
	}
}

func TestDetach_LogsAndMetrics(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg, "")
	require.NoError(t, err)

	m := newMesh(core.WithLogger(zap.New(obsCore)), core.WithMetrics(c), core.WithName("obs"))
	h, _ := star(t, m, "h", "a", "b", "c")
	m.Detach(h)

	require.Equal(t, 4, logs.FilterMessage("node attached").Len())
	require.Equal(t, 1, logs.FilterMessage("node detached").Len())
	require.Equal(t, 2, logs.FilterMessage("branch purged").Len())
	for _, entry := range logs.FilterMessage("node detached").All() {
		require.Equal(t, "obs", entry.ContextMap()["mesh"])
		require.Equal(t, int64(3), entry.ContextMap()["degree"])
	}

	attached, tied, detached, branches, purged := c.Counters("obs")
	require.Equal(t, 4.0, testutil.ToFloat64(attached))
	require.Equal(t, 3.0, testutil.ToFloat64(tied))
	require.Equal(t, 1.0, testutil.ToFloat64(detached))
	require.Equal(t, 2.0, testutil.ToFloat64(branches))
	require.Equal(t, 2.0, testutil.ToFloat64(purged))

	nodes, edges := c.Gauges("obs")
	require.Equal(t, 1.0, testutil.ToFloat64(nodes))
	require.Equal(t, 0.0, testutil.ToFloat64(edges))
}
