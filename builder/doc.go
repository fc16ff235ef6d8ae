// SPDX-License-Identifier: MIT

// Package builder populates a linkstore.Store for a fresh grid using
// reusable functional-options building blocks.
//
// The package offers the following key components:
//
//   - Build(size, opts...): the single entry point; one Link per index,
//     visited in lattice.Indices order.
//   - Positioning: every link starts on its grid coordinate, optionally
//     scaled by WithSpacing.
//   - Colouring policies:
//     - default:            constant DefaultColor.
//     - WithColor:          fixed user-provided colour.
//     - WithRandomColors:   uniform [0,1) RGB triples drawn from the RNG.
//     - WithColorFn:        arbitrary func(idx, rng) Color.
//   - Randomness: WithSeed / WithRand. There is no implicit RNG; a
//     stochastic policy without one fails with ErrNeedRandSource.
//
// Guarantees:
//
//   - Determinism: same size, options and seed ⇒ identical stores.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; Build itself never panics.
//   - Sentinel errors wrapped with %w for errors.Is.
package builder
