// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// ErrBadLayer indicates a z layer outside the grid.
var ErrBadLayer = errors.New("render: layer out of range")

// Terminal writes one line per grid row of the given z layer, each cell
// holding the link position as "(x,y)" in the link colour. Colour output
// depends on what w supports; plain writers get plain text.
func Terminal(w io.Writer, src Source, layer int) error {
	if src == nil {
		return ErrNilSource
	}
	size := src.Size()
	if layer < 0 || layer >= size.Z {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrBadLayer, layer, size.Z)
	}

	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)
	rows := make([][]string, size.Y)
	src.Each(func(idx lattice.Index, l linkstore.Link) bool {
		if idx.Z != layer {
			return true
		}
		cell := fmt.Sprintf("(%5.2f,%5.2f)", l.Position.X, l.Position.Y)
		rows[idx.Y] = append(rows[idx.Y], r.NewStyle().Foreground(lipgloss.Color(l.Color.Hex())).Render(cell))
		return true
	})

	if _, err := fmt.Fprintln(w, header.Render(fmt.Sprintf("layer z=%d (%dx%d)", layer, size.X, size.Y))); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}
