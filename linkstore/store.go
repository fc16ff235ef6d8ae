// SPDX-License-Identifier: MIT

package linkstore

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkgrid/lattice"
)

// Store is a keyed container holding one Link per grid index.
type Store struct {
	size  lattice.Index
	links map[lattice.Index]*Link
	// order caches lattice.Indices(size) for deterministic iteration.
	order []lattice.Index
}

// New builds a Store for a grid of the given size, calling init once per
// index in lattice.Indices order to obtain the initial Link.
// Returns lattice.ErrBadSize for a non-positive dimension and ErrNilInit
// when init is nil.
// Complexity: O(X·Y·Z) time and memory.
func New(size lattice.Index, init func(lattice.Index) Link) (*Store, error) {
	if err := lattice.ValidateSize(size); err != nil {
		return nil, fmt.Errorf("linkstore: %w", err)
	}
	if init == nil {
		return nil, ErrNilInit
	}
	order := lattice.Indices(size)
	links := make(map[lattice.Index]*Link, len(order))
	for _, idx := range order {
		l := init(idx)
		links[idx] = &l
	}

	return &Store{size: size, links: links, order: order}, nil
}

// AtRest returns an initializer that places every link on its own grid
// coordinate with the given colour.
func AtRest(c Color) func(lattice.Index) Link {
	return func(idx lattice.Index) Link {
		return Link{Position: RestPosition(idx), Color: c}
	}
}

// RestPosition converts a lattice index to the position (x, y, z).
func RestPosition(idx lattice.Index) r3.Vec {
	return r3.Vec{X: float64(idx.X), Y: float64(idx.Y), Z: float64(idx.Z)}
}

// Size returns the grid dimensions.
func (s *Store) Size() lattice.Index { return s.size }

// Len returns the number of links, always Size().Volume().
func (s *Store) Len() int { return len(s.links) }

// Has reports whether idx is part of the grid.
func (s *Store) Has(idx lattice.Index) bool {
	_, ok := s.links[idx]
	return ok
}

// Link returns a copy of the link stored at idx.
func (s *Store) Link(idx lattice.Index) (Link, error) {
	l, ok := s.links[idx]
	if !ok {
		return Link{}, fmt.Errorf("%w: %v", ErrIndexNotFound, idx)
	}

	return *l, nil
}

// Position returns the current position of the link at idx.
func (s *Store) Position(idx lattice.Index) (r3.Vec, error) {
	l, ok := s.links[idx]
	if !ok {
		return r3.Vec{}, fmt.Errorf("%w: %v", ErrIndexNotFound, idx)
	}

	return l.Position, nil
}

// SetPosition overwrites the position of the link at idx.
// The colour is left untouched.
func (s *Store) SetPosition(idx lattice.Index, p r3.Vec) error {
	l, ok := s.links[idx]
	if !ok {
		return fmt.Errorf("%w: %v", ErrIndexNotFound, idx)
	}
	l.Position = p

	return nil
}

// Each calls fn for every link in lattice.Indices order until fn returns false.
// fn receives a copy; mutating it has no effect on the store.
func (s *Store) Each(fn func(idx lattice.Index, l Link) bool) {
	for _, idx := range s.order {
		if !fn(idx, *s.links[idx]) {
			return
		}
	}
}

// Snapshot returns a copy of every entry in lattice.Indices order.
func (s *Store) Snapshot() []Entry {
	out := make([]Entry, 0, len(s.order))
	s.Each(func(idx lattice.Index, l Link) bool {
		out = append(out, Entry{Index: idx, Link: l})
		return true
	})

	return out
}

// Clone returns an independent deep copy of the store.
func (s *Store) Clone() *Store {
	links := make(map[lattice.Index]*Link, len(s.links))
	for idx, l := range s.links {
		cp := *l
		links[idx] = &cp
	}
	order := make([]lattice.Index, len(s.order))
	copy(order, s.order)

	return &Store{size: s.size, links: links, order: order}
}
