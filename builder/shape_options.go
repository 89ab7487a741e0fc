// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// shape_options.go — functional options for shapes.
//
// Contract:
//   • Options mutate a shapeConfig passed by value to every shape.
//   • Option constructors panic on meaningless input (WithRand(nil)).
//   • Randomness is explicit: without WithSeed/WithRand the config holds no
//     RNG and stochastic shapes refuse to sample.

package builder

import "math/rand"

// ShapeOption customizes shape construction.
type ShapeOption func(*shapeConfig)

type shapeConfig struct {
	rng *rand.Rand
}

func newShapeConfig(opts ...ShapeOption) shapeConfig {
	var cfg shapeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) ShapeOption {
	return func(c *shapeConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) ShapeOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *shapeConfig) {
		c.rng = r
	}
}
