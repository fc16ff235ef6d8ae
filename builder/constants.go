// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by grid builders.
package builder

import "github.com/katalvlaran/linkgrid/linkstore"

const (
	// MethodBuild is the canonical name used to prefix Build errors.
	MethodBuild = "Build"

	// MinGridDim is the smallest allowed dimension along any axis.
	// A 1×1×1 grid has no neighbours but is valid.
	MinGridDim = 1

	// DefaultSpacing is the distance between rest positions of adjacent links.
	DefaultSpacing = 1.0
)

// DefaultColor is the colour of every link when no colouring policy is set.
var DefaultColor = linkstore.Color{R: 0.5, G: 0.5, B: 0.5}
