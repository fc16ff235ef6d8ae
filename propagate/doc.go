// SPDX-License-Identifier: MIT

// Package propagate spreads a local displacement through a link grid by
// re-enforcing the per-axis distance window between neighbours, breadth
// first, until the grid is stable again.
//
// What
//
//   - Engine binds a linkstore.Store, a lattice.Topology and a
//     constraint.Corrector.
//   - Deform moves one seed link by an (x, y) displacement and then
//     corrects its neighbours, their neighbours, and so on.
//   - Result reports which nodes were corrected, in order, and which
//     sponsor won each of them.
//
// Traversal order
//
//	One FIFO queue of pending (sponsor, target) tasks exists per direction.
//	The seed's neighbours are queued first. Queues are drained one at a
//	time in the topology's order (RIGHT, LEFT, TOP, BOTTOM for FourWay);
//	tasks queued into an already drained direction are picked up by the
//	next pass, and passes repeat until all queues are empty.
//
// First corrector wins
//
//	A target that the corrector moves joins a per-call visited set and is
//	never corrected again during that call: its neighbours are only queued
//	if they are not visited yet, and stale tasks whose target was visited
//	in the meantime are dropped when dequeued. A target the corrector
//	leaves in place is a dead end for that path only; another sponsor may
//	still reach it later.
//
//	The seed is displaced, not corrected, so it is not visited up front.
//
// Z axis
//
//	Deform only shifts X and Y of the seed. Z positions change only when
//	a correction is needed on that axis.
//
// Concurrency
//
//	Deform is synchronous and never calls back into the store owner except
//	through the optional hooks. Calls on the same store must be serialized.
//
// Errors
//
//   - ErrNilStore:              New received a nil store.
//   - constraint.ErrInvalidModel: New received a malformed window.
//   - ErrSeedNotFound:          the seed index is not part of the grid.
//   - constraint.ErrNoConvergence: a correction exhausted its sweep bound.
package propagate
