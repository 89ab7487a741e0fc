package main

import (
	"flag"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Karol03/mesh/bfs"
	"github.com/Karol03/mesh/builder"
	"github.com/Karol03/mesh/core"
	"github.com/Karol03/mesh/dfs"
)

func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("meshctl "+name, flag.ContinueOnError)
	fs.SetOutput(e.out)

	return fs
}

// load reads the pack named by -in into a fresh mesh.
func (e *env) load(in, from string) (*core.Mesh[desc, desc], error) {
	if in == "" {
		return nil, fmt.Errorf("%w: -in is required", ErrUsage)
	}
	m := e.newMesh()
	if err := readPack(m, in, inputFormat(in, from)); err != nil {
		return nil, err
	}
	e.log.Debug("pack loaded", zap.String("path", in), zap.Int("nodes", m.NodeCount()), zap.Int("edges", m.EdgeCount()))

	return m, nil
}

// buildDemo grows the reference mesh:
//
//	   2 ─────────── 9 ── 10
//	   │            /     │
//	4─ 1 ─ 3 ──────┘      8
//	   │    \            /
//	   5     6 ── 7     /
//	          \────────┘
//
// then removes 3, 6, 8 and 9, which leaves 1 with its leaves 2, 4 and 5.
func buildDemo(b *builder.Builder[desc, desc]) {
	b.Create("Node 1").
		Create("Node 2").
		HopTo(1).Create("Node 3").
		HopTo(1).Create("Node 4").
		HopTo(1).Create("Node 5").
		HopToWhere(core.ValueIs[desc]("Node 3")).
		Create("Node 6").
		Create("Node 7").
		HopTo(6).Create("Node 8").
		HopTo(3).Create("Node 9").
		Create("Node 10").
		Connect(8, 10, "Relation strength: 10").
		Connect(9, 10, "").
		Connect(2, 9, "")

	b.Remove(3).
		Remove(6).
		Remove(8).
		Remove(9)
}

func runDemo(e *env, args []string) error {
	fs := e.flags("demo")
	format := fs.String("format", e.cfg.Format, "output format: text, binary or dot")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m := e.newMesh()
	buildDemo(builder.New(m))
	st := m.Stats()
	e.log.Info("demo built", zap.Int("nodes", st.Nodes), zap.Int("edges", st.Edges))

	return e.writePack(m, *out, *format)
}

func runGen(e *env, args []string) error {
	fs := e.flags("gen")
	kind := fs.String("shape", "chain", "chain, ring, star, wheel, grid, complete or sparse")
	n := fs.Int("n", 5, "node count")
	rows := fs.Int("rows", 2, "grid rows")
	cols := fs.Int("cols", 2, "grid columns")
	p := fs.Float64("p", 0.5, "edge probability (sparse)")
	seed := fs.Int64("seed", 1, "random seed (sparse)")
	format := fs.String("format", e.cfg.Format, "output format: text, binary or dot")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var shape builder.Shape
	switch *kind {
	case "chain":
		shape = builder.Chain(*n)
	case "ring":
		shape = builder.Ring(*n)
	case "star":
		shape = builder.Star(*n)
	case "wheel":
		shape = builder.Wheel(*n)
	case "grid":
		shape = builder.Grid(*rows, *cols)
	case "complete":
		shape = builder.Complete(*n)
	case "sparse":
		shape = builder.RandomSparse(*n, *p)
	default:
		return fmt.Errorf("%w: unknown shape %q", ErrUsage, *kind)
	}

	m := e.newMesh()
	sopts := []builder.ShapeOption{builder.WithSeed(*seed)}
	if err := builder.Grow(builder.New(m), builder.DescriptionLabels(), sopts, shape); err != nil {
		return err
	}

	return e.writePack(m, *out, *format)
}

func runConvert(e *env, args []string) error {
	fs := e.flags("convert")
	in := fs.String("in", "", "input pack")
	from := fs.String("from", "", "input format: text or binary (default: by extension)")
	to := fs.String("to", e.cfg.Format, "output format: text, binary or dot")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := e.load(*in, *from)
	if err != nil {
		return err
	}

	return e.writePack(m, *out, *to)
}

func runPath(e *env, args []string) error {
	fs := e.flags("path")
	in := fs.String("in", "", "input pack")
	from := fs.String("from", "", "input format: text or binary (default: by extension)")
	a := fs.Uint("a", 0, "begin node id")
	z := fs.Uint("b", 0, "end node id")
	begin := fs.String("begin", "", "begin at the nearest node with this payload (overrides -a)")
	end := fs.String("end", "", "end at the nearest node with this payload (overrides -b)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := e.load(*in, *from)
	if err != nil {
		return err
	}
	b := builder.New(m, builder.WithMaxDepth(e.cfg.MaxDepth))

	var path []core.NodeID
	switch {
	case *begin != "" && *end != "":
		path = b.PathBetweenMatching(core.ValueIs[desc](*begin), core.ValueIs[desc](*end))
	case *end != "":
		path = b.PathBetweenWhere(core.NodeID(*a), core.ValueIs[desc](*end))
	case *begin != "":
		path = b.PathBetweenWhere(core.NodeID(*z), core.ValueIs[desc](*begin))
		slices.Reverse(path)
	default:
		path = b.PathBetween(core.NodeID(*a), core.NodeID(*z))
	}
	if len(path) == 0 {
		fmt.Fprintln(e.out, "no path")
		return nil
	}
	fmt.Fprintln(e.out, path)

	return nil
}

func runStats(e *env, args []string) error {
	fs := e.flags("stats")
	in := fs.String("in", "", "input pack")
	from := fs.String("from", "", "input format: text or binary (default: by extension)")
	root := fs.Uint("root", 0, "also report eccentricity and a farthest node for this node id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := e.load(*in, *from)
	if err != nil {
		return err
	}

	st := m.Stats()
	fmt.Fprintf(e.out, "nodes: %d\n", st.Nodes)
	fmt.Fprintf(e.out, "edges: %d\n", st.Edges)
	fmt.Fprintf(e.out, "isolated: %d\n", st.Isolated)
	fmt.Fprintf(e.out, "max degree: %d\n", st.MaxDegree)
	fmt.Fprintf(e.out, "components: %d\n", len(dfs.Components(m)))
	if *root != 0 {
		if err := e.eccentricity(m, core.NodeID(*root)); err != nil {
			return err
		}
	}
	if err := m.CheckInvariants(); err != nil {
		fmt.Fprintf(e.out, "invariants: %v\n", err)
		return err
	}
	fmt.Fprintln(e.out, "invariants: ok")

	return nil
}

// eccentricity prints the hop distance from root to the farthest node of its
// component, and one shortest path there. Ties go to the first node visited.
func (e *env) eccentricity(m *core.Mesh[desc, desc], root core.NodeID) error {
	res, err := bfs.BFS(m, root)
	if err != nil {
		return err
	}
	far := root
	for _, id := range res.Order {
		if res.Depth[id] > res.Depth[far] {
			far = id
		}
	}
	trail, err := res.PathTo(far)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "eccentricity of %d: %d\n", root, res.Depth[far])
	fmt.Fprintf(e.out, "farthest: %v\n", trail)

	return nil
}
