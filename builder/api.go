// SPDX-License-Identifier: MIT
// Package: linkgrid/builder
//
// api.go: public entry point.
//
// Determinism:
//   • Links are created in lattice.Indices order (y, then x, then z).
//   • Colour draws consume the RNG in that same order, so a fixed seed
//     always yields the same palette.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// Build creates a Store for a grid of the given size with every link on
// its (scaled) grid coordinate and coloured per the resolved options.
//
// Errors:
//   - ErrBadSize        when any dimension is below MinGridDim.
//   - ErrNeedRandSource when a stochastic colouring has no RNG.
//
// Complexity: O(X·Y·Z) time and memory.
func Build(size lattice.Index, opts ...Option) (*linkstore.Store, error) {
	cfg := newBuilderConfig(opts...)

	if err := validateSize(size); err != nil {
		return nil, err
	}
	if cfg.needsRand && cfg.rng == nil {
		return nil, builderErrorf(MethodBuild, ErrNeedRandSource, "random colours")
	}

	store, err := linkstore.New(size, func(idx lattice.Index) linkstore.Link {
		return linkstore.Link{
			Position: r3.Scale(cfg.spacing, linkstore.RestPosition(idx)),
			Color:    cfg.colorFn(idx, cfg.rng),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return store, nil
}
