// SPDX-License-Identifier: MIT

// Package render draws the links of a grid, either as a scatter plot saved
// through gonum/plot (PNG, SVG, PDF, ...) or as a coloured text table for a
// terminal.
//
// Both renderers consume a Source, which *linkstore.Store satisfies, and
// only read from it. Points are drawn at their (x, y) position with the
// link's own colour; the y axis grows downward so the picture matches the
// row order of the grid.
package render
