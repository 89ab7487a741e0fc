// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// shape_catalog.go — the shape catalog.
//
// Emission order (stable, documented):
//   • Chain:        i–(i+1) for i asc.
//   • Ring:         Chain, then the closing (n-1)–0.
//   • Star:         center is index 0; spokes 0–i for i asc.
//   • Wheel:        Ring(n-1), then hub n-1; spokes hub–i for i asc.
//   • Grid:         row-major index r*cols+c; per cell Right then Bottom.
//   • Complete:     i–j for i asc, j > i asc.
//   • RandomSparse: one Bernoulli trial per pair in Complete's order.
// Indices are local to the shape; the sketch offsets them.

package builder

const (
	methodChain        = "Chain"
	methodRing         = "Ring"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minChainNodes    = 1
	minRingNodes     = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minGridDim       = 1
	minCompleteNodes = 1
	minSparseNodes   = 1
)

// Chain sketches a path of n nodes (n ≥ 1).
func Chain(n int) Shape {
	return func(s *sketch, _ shapeConfig) error {
		if n < minChainNodes {
			return shapeErrorf(methodChain, ErrTooFewNodes, "n=%d < min=%d", n, minChainNodes)
		}
		base := s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.link(base+i, base+i+1)
		}

		return nil
	}
}

// Ring sketches a cycle of n nodes (n ≥ 3).
func Ring(n int) Shape {
	return func(s *sketch, cfg shapeConfig) error {
		if n < minRingNodes {
			return shapeErrorf(methodRing, ErrTooFewNodes, "n=%d < min=%d", n, minRingNodes)
		}
		base := s.nodes
		_ = Chain(n)(s, cfg)
		s.link(base+n-1, base)

		return nil
	}
}

// Star sketches a center with n-1 leaves (n ≥ 2).
func Star(n int) Shape {
	return func(s *sketch, _ shapeConfig) error {
		if n < minStarNodes {
			return shapeErrorf(methodStar, ErrTooFewNodes, "n=%d < min=%d", n, minStarNodes)
		}
		center := s.grow(n)
		for i := 1; i < n; i++ {
			s.link(center, center+i)
		}

		return nil
	}
}

// Wheel sketches Ring(n-1) plus a hub tied to every rim node (n ≥ 4).
func Wheel(n int) Shape {
	return func(s *sketch, cfg shapeConfig) error {
		if n < minWheelNodes {
			return shapeErrorf(methodWheel, ErrTooFewNodes, "n=%d < min=%d", n, minWheelNodes)
		}
		rim := s.nodes
		if err := Ring(n-1)(s, cfg); err != nil {
			return shapeErrorf(methodWheel, err, "rim C_%d", n-1)
		}
		hub := s.grow(1)
		for i := 0; i < n-1; i++ {
			s.link(hub, rim+i)
		}

		return nil
	}
}

// Grid sketches a rows×cols 4-neighborhood lattice (rows, cols ≥ 1).
func Grid(rows, cols int) Shape {
	return func(s *sketch, _ shapeConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return shapeErrorf(methodGrid, ErrTooFewNodes, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim)
		}
		base := s.grow(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.link(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					s.link(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}

// Complete sketches K_n (n ≥ 1).
func Complete(n int) Shape {
	return func(s *sketch, _ shapeConfig) error {
		if n < minCompleteNodes {
			return shapeErrorf(methodComplete, ErrTooFewNodes, "n=%d < min=%d", n, minCompleteNodes)
		}
		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(base+i, base+j)
			}
		}

		return nil
	}
}

// RandomSparse sketches an Erdős–Rényi graph: every pair of the n nodes is
// tied independently with probability p.
//
// Requires n ≥ 1 and 0 ≤ p ≤ 1. An RNG (WithSeed/WithRand) is required
// when 0 < p < 1; p = 0 and p = 1 are deterministic and draw nothing.
func RandomSparse(n int, p float64) Shape {
	return func(s *sketch, cfg shapeConfig) error {
		if n < minSparseNodes {
			return shapeErrorf(methodRandomSparse, ErrTooFewNodes, "n=%d < min=%d", n, minSparseNodes)
		}
		if p < 0 || p > 1 {
			return shapeErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [0,1]", p)
		}
		stochastic := p > 0 && p < 1
		if stochastic && cfg.rng == nil {
			return shapeErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
