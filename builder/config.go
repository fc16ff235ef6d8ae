// SPDX-License-Identifier: MIT
// Package: linkgrid/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                   (pure unless seeded)
//   • colorFn  = constant DefaultColor
//   • spacing  = DefaultSpacing (1.0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// builderConfig aggregates all knobs used by Build.
// It is passed by value (immutable to callers).
type builderConfig struct {
	// RNG for stochastic colouring; nil means "no randomness".
	rng *rand.Rand
	// colorFn picks the colour of each link, called in lattice.Indices order.
	colorFn func(idx lattice.Index, rng *rand.Rand) linkstore.Color
	// needsRand marks colorFn as stochastic.
	needsRand bool
	// spacing scales rest positions.
	spacing float64
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later options override earlier ones).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		colorFn: constColor(DefaultColor),
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func constColor(c linkstore.Color) func(lattice.Index, *rand.Rand) linkstore.Color {
	return func(lattice.Index, *rand.Rand) linkstore.Color { return c }
}

// uniformColor draws each channel from U[0,1).
func uniformColor(_ lattice.Index, rng *rand.Rand) linkstore.Color {
	return linkstore.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}
