// SPDX-License-Identifier: MIT
// Package: linkgrid/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see builderErrorf).
//   • Build never panics; validation panics live in option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a grid dimension smaller than MinGridDim.
var ErrBadSize = errors.New("builder: invalid grid size")

// ErrNeedRandSource indicates a stochastic colouring policy without a
// *rand.Rand in the resolved configuration (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a wrapped sentinel with the method name:
// "<method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
