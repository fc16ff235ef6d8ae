// SPDX-License-Identifier: MIT

// Package linkstore owns the mutable state of a link grid: one Link
// (position + render colour) per lattice index.
//
// The key set is fixed when the Store is built and never changes; only
// positions mutate afterwards. Callers always receive copies, and writes go
// through SetPosition, so no code outside the store can hold an alias into
// it.
//
// A Store is not safe for concurrent mutation. Hosts that share one grid
// between goroutines must serialize deform calls themselves.
//
// Errors:
//
//   - ErrIndexNotFound: the index is not part of the grid.
//   - ErrNilInit:       New was called without an initializer.
//   - lattice.ErrBadSize: a grid dimension is smaller than 1.
package linkstore
