package dfs_test

import (
	"fmt"

	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/dfs"
)

// ExampleDFS shows post-order on a diamond:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleDFS() {
	m := core.NewMesh[core.Description, core.Description]()
	a := m.Attach("A", "")
	m.Attach("B", "")
	d := m.Attach("D", "")
	m.SetCursor(a)
	c := m.Attach("C", "")
	m.Tie(c, d, "")

	res, err := dfs.DFS(m, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		n, _ := m.Node(id)
		fmt.Print(n.Value(), " ")
	}
	fmt.Println()

	// Output:
	// C D B A
}

// ExampleWalk matches a label pattern against the mesh.
func ExampleWalk() {
	m := core.NewMesh[core.Description, core.Description]()
	for _, label := range []core.Description{"gate", "hall", "room", "hall", "exit"} {
		m.Attach(label, "")
	}

	walk, err := dfs.Walk(m, []core.NodePredicate[core.Description]{
		core.ValueIs[core.Description]("room"),
		core.ValueIs[core.Description]("hall"),
		core.ValueIs[core.Description]("exit"),
	})
	fmt.Println(walk, err)

	// Output:
	// [3 4 5] <nil>
}
