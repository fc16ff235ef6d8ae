// Package linkgrid is an in-memory engine for deforming grids of links:
// pull one point of a 2D or 3D sheet and every other point follows until
// all neighbour pairs sit inside a per-axis distance window.
//
// 🚀 What is linkgrid?
//
//	A small, deterministic library plus a driver that brings together:
//		• Lattice: grid indices, directions and the four-way topology
//		• Link store: one position and colour per index, the only mutable state
//		• Constraint: the distance window and its iterative corrector
//		• Propagation: queue-based fan-out of corrections from a displaced seed
//		• Builder: fills a store, optionally with seeded random colours
//		• Render: scatter plots via gonum/plot and a coloured terminal view
//
// ✨ Why linkgrid?
//
//   - Deterministic: same grid, same seed and same displacement give
//     bit-identical results
//   - Bounded: every node is corrected at most once per deformation and
//     every correction has a sweep cap
//   - Extensible: swap the topology, hook into each correction, trace it
//     with a charmbracelet/log logger
//
// Packages:
//
//	lattice/    : Index, Direction, Topology, FourWay
//	linkstore/  : Link, Color, Store
//	constraint/ : Model, Corrector
//	propagate/  : Engine.Deform and its Result
//	builder/    : Build with functional options
//	render/     : Scatter, SaveImage, Terminal
//
// Quick ASCII example (seed S displaced to the left, the row follows):
//
//	before:  S───o───o───o
//	after:  S─o─o─o        (every gap back inside [min, max])
//
// The linkgrid command (cmd/linkgrid) runs scenarios described in TOML or
// YAML files:
//
//	go run ./cmd/linkgrid run --config scene.toml --after after.png
package linkgrid
