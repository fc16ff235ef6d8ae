// SPDX-License-Identifier: MIT
// Package: linkgrid/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// Option customizes Build by mutating a builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic colouring. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithColor paints every link with c.
func WithColor(col linkstore.Color) Option {
	return func(c *builderConfig) {
		c.colorFn = constColor(col)
		c.needsRand = false
	}
}

// WithRandomColors draws every channel uniformly from [0,1).
// Requires WithSeed or WithRand.
func WithRandomColors() Option {
	return func(c *builderConfig) {
		c.colorFn = uniformColor
		c.needsRand = true
	}
}

// WithColorFn installs a custom colouring policy. The rng argument is the
// configured RNG and may be nil. Panics on nil.
func WithColorFn(fn func(idx lattice.Index, rng *rand.Rand) linkstore.Color) Option {
	if fn == nil {
		panic("builder: WithColorFn(nil)")
	}
	return func(c *builderConfig) {
		c.colorFn = fn
		c.needsRand = false
	}
}

// WithSpacing scales the rest position of every link by s.
// Panics if s <= 0 or is not finite.
func WithSpacing(s float64) Option {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}
