// SPDX-License-Identifier: MIT
// Package: mesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are never formatted at definition site; context is attached
//     with %w at the call site via shapeErrorf.
//   • Cursor operations never return errors: a failed hop leaves the cursor
//     at core.NoNode and Found() reports false.
//   • Option constructors (WithX) panic on meaningless input; shapes and
//     BuildMesh never panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// minimum of the requested shape.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic shape ran without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a shape could not be materialized into
// the mesh (nil shape, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")

// shapeErrorf prefixes a wrapped sentinel with the shape name:
// "<Shape>: <message>: <sentinel>".
func shapeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
