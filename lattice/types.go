// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a grid with a dimension smaller than 1.
var ErrBadSize = errors.New("lattice: every grid dimension must be ≥ 1")

// Index is a node's lattice coordinate. Equality and hashing are
// structural over the three components.
type Index struct {
	X, Y, Z int
}

// Volume returns X·Y·Z, the number of nodes of a grid whose size is idx.
func (idx Index) Volume() int {
	return idx.X * idx.Y * idx.Z
}

// String renders the index as "(x,y,z)".
func (idx Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", idx.X, idx.Y, idx.Z)
}

// Direction selects one of the four modeled adjacency relations.
type Direction int

const (
	// Right is +1 along X.
	Right Direction = iota
	// Left is -1 along X.
	Left
	// Top is -1 along Y (screen coordinates, y grows downward).
	Top
	// Bottom is +1 along Y.
	Bottom
)

// directionOrder is the fixed processing order used by propagation.
var directionOrder = []Direction{Right, Left, Top, Bottom}

// Directions returns the canonical processing order RIGHT, LEFT, TOP, BOTTOM.
// The returned slice is a fresh copy.
func Directions() []Direction {
	out := make([]Direction, len(directionOrder))
	copy(out, directionOrder)

	return out
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Topology maps (direction, index) to the adjacent index.
// Implementations must be pure: the same inputs always give the same answer.
type Topology interface {
	// Neighbour returns the index adjacent to idx in direction d,
	// or false when no such node exists.
	Neighbour(d Direction, idx Index) (Index, bool)
	// Directions returns the directions in the order they are processed.
	Directions() []Direction
}
