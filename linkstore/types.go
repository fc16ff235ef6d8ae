// SPDX-License-Identifier: MIT

package linkstore

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkgrid/lattice"
)

// Sentinel errors for store operations.
var (
	// ErrIndexNotFound indicates an index outside the store's key set.
	ErrIndexNotFound = errors.New("linkstore: index not found")
	// ErrNilInit indicates New was given a nil initializer.
	ErrNilInit = errors.New("linkstore: initializer is nil")
)

// Color is an ordered RGB triple with components in [0,1].
// It is render-only data; propagation never reads or writes it.
type Color struct {
	R, G, B float64
}

// RGBA implements image/color.Color. Components are clamped to [0,1]
// and the colour is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

// Hex renders the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R)>>8, channel(c.G)>>8, channel(c.B)>>8)
}

func channel(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}

	return uint32(math.Round(v * 0xffff))
}

// Link is a grid node: a position in space plus its render colour.
type Link struct {
	Position r3.Vec
	Color    Color
}

// Entry pairs a lattice index with a copy of its Link.
type Entry struct {
	Index lattice.Index
	Link  Link
}
