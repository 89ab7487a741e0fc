package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Karol03/mesh/bfs"
	"github.com/Karol03/mesh/core"
)

type mesh = core.Mesh[core.Description, core.Description]

// build inserts one node per label (ids 1..n) and ties the given pairs.
func build(t testing.TB, labels string, pairs ...[2]core.NodeID) *mesh {
	t.Helper()
	m := core.NewMesh[core.Description, core.Description]()
	for _, r := range labels {
		m.InsertNode(core.Description(r))
	}
	for _, p := range pairs {
		if _, err := m.InsertEdge(p[0], p[1], ""); err != nil {
			t.Fatalf("InsertEdge(%d, %d): %v", p[0], p[1], err)
		}
	}

	return m
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[core.Description, core.Description](nil, 1); !errors.Is(err, bfs.ErrMeshNil) {
		t.Errorf("nil mesh: want ErrMeshNil, got %v", err)
	}
	m := build(t, "A")
	if _, err := bfs.BFS(m, 9); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	if _, err := bfs.BFS(m, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A
	m := build(t, "ABCD", [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3}, [2]core.NodeID{3, 4}, [2]core.NodeID{4, 1})

	res, err := bfs.BFS(m, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{1, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[core.NodeID]int{1: 0, 2: 1, 4: 1, 3: 2} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%d] = %d; want %d", id, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	m := build(t, "XYPQ", [2]core.NodeID{1, 2}, [2]core.NodeID{3, 4})

	resX, _ := bfs.BFS(m, 1)
	if !reflect.DeepEqual(resX.Order, []core.NodeID{1, 2}) {
		t.Errorf("From X: got %v; want [1 2]", resX.Order)
	}
	resP, _ := bfs.BFS(m, 3)
	if !reflect.DeepEqual(resP.Order, []core.NodeID{3, 4}) {
		t.Errorf("From P: got %v; want [3 4]", resP.Order)
	}
}

// TestBFS_MaxDepthAndFilter verifies depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	m := build(t, "ABC", [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3})

	if res, _ := bfs.BFS(m, 1, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []core.NodeID{1, 2}) {
		t.Errorf("MaxDepth=1: got %v; want [1 2]", res.Order)
	}
	if res, _ := bfs.BFS(m, 1, bfs.WithMaxDepth(0)); len(res.Order) != 3 {
		t.Errorf("MaxDepth=0: got %v; want all three", res.Order)
	}
	res, _ := bfs.BFS(m, 1, bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool {
		return !(curr == 2 && nbr == 3)
	}))
	if want := []core.NodeID{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_ParallelEdgesDedup ensures parallel edges do not enqueue twice.
func TestBFS_ParallelEdgesDedup(t *testing.T) {
	m := build(t, "AB", [2]core.NodeID{1, 2}, [2]core.NodeID{2, 1})
	res, _ := bfs.BFS(m, 1)
	if want := []core.NodeID{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAborts checks that a hook error stops the traversal.
func TestBFS_OnVisitAborts(t *testing.T) {
	m := build(t, "ABC", [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3})
	stop := errors.New("stop")

	var seen []string
	res, err := bfs.BFS(m, 1, bfs.WithOnVisit(func(id core.NodeID, d int) error {
		seen = append(seen, fmt.Sprintf("%d@%d", id, d))
		if d == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped hook error, got %v", err)
	}
	if want := []string{"1@0", "2@1"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visits = %v; want %v", seen, want)
	}
	if len(res.Order) != 2 {
		t.Errorf("Order = %v; want two entries", res.Order)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	m := build(t, "XY")
	res, _ := bfs.BFS(m, 1)
	if path, _ := res.PathTo(1); !reflect.DeepEqual(path, []core.NodeID{1}) {
		t.Errorf("PathTo start: got %v; want [1]", path)
	}
	_, err := res.PathTo(2)
	if !errors.Is(err, bfs.ErrNoPath) || !strings.Contains(err.Error(), "not reached") {
		t.Errorf("PathTo unreachable: expected ErrNoPath, got %v", err)
	}
}
