package builder_test

import (
	"fmt"

	"github.com/Karol03/mesh/builder"
	"github.com/Karol03/mesh/core"
)

// ExampleBuilder grows a chain through the cursor and asks for a path.
func ExampleBuilder() {
	b := builder.New(core.NewMesh[core.Description, core.Description]())
	b.Create("N1").Create("N2").Create("N3").Create("N4").Create("N5")

	fmt.Println(b.PathBetween(1, 5))

	// 2 and 4 are not adjacent
	b.HopToPathEnd(1, 2, 4)
	fmt.Println(b.Found())

	// Output:
	// [1 2 3 4 5]
	// false
}

func ExampleBuildMesh() {
	m, err := builder.BuildMesh(builder.DescriptionLabels(), nil, nil, builder.Grid(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.NodeCount(), m.EdgeCount())

	// Output:
	// 4 4
}
