// SPDX-License-Identifier: MIT

// Package constraint enforces a per-axis distance window between a node
// (the target) and an already-settled neighbour (the sponsor).
//
// What
//
//   - Model holds the per-axis minimum and maximum allowed absolute
//     distance. Validate rejects windows that cannot converge.
//   - Corrector nudges the target by a fixed relaxation step until every
//     axis is either coincident (distance exactly 0) or inside [Min, Max].
//
// Rules (per axis, per sweep, with d = |target - sponsor|)
//
//   - d != 0 and d < Min: push the target away from the sponsor by Step.
//   - d > Max:            pull the target toward the sponsor by Step.
//   - Coincident points (d == 0) are never pushed apart.
//
// Distances are recomputed only after a full sweep over X, Y and Z.
//
// Termination
//
//	With a fixed step the loop terminates when the window is reachable.
//	Validate rejects Min > Max and Max < 0. Windows that are valid but
//	narrower than the step can still oscillate, so every Correct call is
//	bounded by MaxSweeps and reports ErrNoConvergence when the bound is hit.
//
// Errors
//
//   - ErrInvalidModel:  malformed window (Min > Max, Max < 0, NaN/Inf).
//   - ErrNoConvergence: the sweep bound was exhausted.
package constraint
