// SPDX-License-Identifier: MIT

// Package lattice treats a 3D box of integer coordinates as a graph of
// axis-aligned neighbours, the adjacency backbone of a link grid.
//
// What:
//
//   - Index is a fixed lattice coordinate (X, Y, Z); it is a comparable value
//     and can be used directly as a map key.
//   - Direction enumerates the four modeled adjacency relations:
//     Right, Left, Top, Bottom. Z is carried as a coordinate but never
//     propagated along.
//   - Topology answers "which index lies next to idx in direction d?".
//     FourWay is the canonical implementation, bounded by the grid size.
//   - Indices enumerates a grid in deterministic y-major order.
//
// Why:
//
//   - Propagation code asks the topology for neighbours instead of doing
//     coordinate arithmetic, so alternative grid shapes can be swapped in
//     without touching the traversal.
//
// Complexity:
//
//   - Neighbour, InBounds: O(1) time, O(1) memory.
//   - Indices:             O(X·Y·Z) time and memory.
//
// Errors:
//
//   - ErrBadSize: a grid dimension is smaller than 1.
package lattice
