// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// FourWay is the canonical Topology: right/left along X and top/bottom
// along Y, bounded by the grid size. It is immutable once built.
type FourWay struct {
	size Index
	// offsets is indexed by Direction.
	offsets [4][2]int
}

// NewFourWay builds a FourWay topology for a grid of the given size.
// Returns ErrBadSize if any dimension is smaller than 1.
// Complexity: O(1).
func NewFourWay(size Index) (*FourWay, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	return &FourWay{
		size: size,
		offsets: [4][2]int{
			Right:  {1, 0},
			Left:   {-1, 0},
			Top:    {0, -1},
			Bottom: {0, 1},
		},
	}, nil
}

// ValidateSize reports ErrBadSize, wrapped with the offending size,
// when any dimension of size is smaller than 1.
func ValidateSize(size Index) error {
	if size.X < 1 || size.Y < 1 || size.Z < 1 {
		return fmt.Errorf("%w: got %v", ErrBadSize, size)
	}

	return nil
}

// Size returns the grid dimensions.
func (g *FourWay) Size() Index {
	return g.size
}

// InBounds reports whether idx lies within the grid boundaries.
// Complexity: O(1).
func (g *FourWay) InBounds(idx Index) bool {
	return idx.X >= 0 && idx.X < g.size.X &&
		idx.Y >= 0 && idx.Y < g.size.Y &&
		idx.Z >= 0 && idx.Z < g.size.Z
}

// Neighbour returns the index adjacent to idx in direction d.
// It returns false when the neighbour would fall outside the grid, when
// idx itself is outside the grid, or when d is not one of the four
// modeled directions.
// Complexity: O(1).
func (g *FourWay) Neighbour(d Direction, idx Index) (Index, bool) {
	if d < Right || d > Bottom || !g.InBounds(idx) {
		return Index{}, false
	}
	off := g.offsets[d]
	next := Index{X: idx.X + off[0], Y: idx.Y + off[1], Z: idx.Z}
	if !g.InBounds(next) {
		return Index{}, false
	}

	return next, true
}

// Directions returns RIGHT, LEFT, TOP, BOTTOM.
func (g *FourWay) Directions() []Direction {
	return Directions()
}

// Indices enumerates every index of a grid of the given size, y-major,
// then x, then z. Returns nil for an invalid size.
// Complexity: O(X·Y·Z) time and memory.
func Indices(size Index) []Index {
	if ValidateSize(size) != nil {
		return nil
	}
	out := make([]Index, 0, size.Volume())
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			for z := 0; z < size.Z; z++ {
				out = append(out, Index{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}
