// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// ErrNilSource is returned when a renderer is given no source.
var ErrNilSource = errors.New("render: nil source")

// Source is the read-only view the renderers need.
type Source interface {
	Size() lattice.Index
	Each(fn func(idx lattice.Index, l linkstore.Link) bool)
}

// Scatter builds a plot with one circle per link at its (x, y) position,
// filled with the link colour.
func Scatter(src Source, opts ...Option) (*plot.Plot, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := newOptions(opts...)

	pts := make(plotter.XYs, 0, src.Size().Volume())
	colors := make([]linkstore.Color, 0, src.Size().Volume())
	src.Each(func(_ lattice.Index, l linkstore.Link) bool {
		pts = append(pts, plotter.XY{X: l.Position.X, Y: l.Position.Y})
		colors = append(colors, l.Color)
		return true
	})

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("render: scatter: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colors[i],
			Radius: o.radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)

	return p, nil
}

// SaveImage renders src with Scatter and writes it to path. The image
// format follows the file extension.
func SaveImage(src Source, path string, opts ...Option) error {
	p, err := Scatter(src, opts...)
	if err != nil {
		return err
	}
	o := newOptions(opts...)
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
