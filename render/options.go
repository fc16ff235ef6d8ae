// SPDX-License-Identifier: MIT

package render

import (
	"gonum.org/v1/plot/vg"
)

// Defaults used by Scatter and SaveImage.
const (
	DefaultTitle       = "linkgrid"
	DefaultGlyphRadius = vg.Length(3)
	DefaultWidth       = 6 * vg.Inch
	DefaultHeight      = 6 * vg.Inch
)

type options struct {
	title  string
	radius vg.Length
	width  vg.Length
	height vg.Length
}

// Option configures a renderer.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{
		title:  DefaultTitle,
		radius: DefaultGlyphRadius,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTitle sets the plot title. An empty title hides it.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithGlyphRadius sets the point radius. Panics if r <= 0.
func WithGlyphRadius(r vg.Length) Option {
	if r <= 0 {
		panic("render: WithGlyphRadius(r<=0)")
	}
	return func(o *options) { o.radius = r }
}

// WithImageSize sets the saved image dimensions. Panics on non-positive sizes.
func WithImageSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic("render: WithImageSize(w<=0 || h<=0)")
	}
	return func(o *options) {
		o.width = w
		o.height = h
	}
}
