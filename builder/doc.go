// Package builder provides a chainable, cursor-driven façade over core.Mesh
// and a catalog of deterministic topology shapes.
//
// The package offers the following key components:
//
//   - Builder[N, E]:
//     – Create / CreateWith:          attach a node to the cursor.
//     – Remove / RemoveCurrent / RemoveAll / RemoveWhere: detach with
//     branch repair.
//     – Connect / ConnectWhere / ConnectTo / ConnectToWhere: tie nodes.
//     – HopVia / HopTo / HopToWhere:  move the cursor.
//     – HopToPathEnd / HopToUniquePathEnd: follow an explicit id sequence.
//     – HopToPatternEnd / HopToUniquePatternEnd: follow the first walk that
//     matches a predicate sequence (dfs.Walk); LastWalk returns it.
//     – PathBetween / PathBetweenWhere / PathBetweenMatching: shortest
//     hop-count paths (bfs.ShortestPath).
//     – CurrentID / CurrentValue / Found: cursor queries.
//   - Shapes (Chain, Ring, Star, Wheel, Grid, Complete, RandomSparse) grown
//     into a mesh with Grow or BuildMesh, labeled through Labels.
//   - Options: WithMaxDepth for path queries; WithSeed / WithRand for
//     stochastic shapes.
//
// Guarantees:
//
//   - A failed hop always leaves the cursor at core.NoNode; Found() reports
//     it. Mutators with failed preconditions are silent no-ops.
//   - Path queries return nil when no path exists and [a] when a is both a
//     begin and an end.
//   - Shapes are deterministic for equal inputs, options and seed.
//   - Option constructors panic on meaningless values; nothing else panics.
//
// Example:
//
//	b := builder.New(core.NewMesh[core.Description, core.Description]())
//	b.Create("gate").Create("hall").Create("exit")
//	path := b.PathBetween(1, 3) // [1 2 3]
package builder
