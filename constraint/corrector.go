// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Corrector moves a target node until it satisfies a Model relative to its
// sponsor. It holds no per-call state and may be reused freely.
type Corrector struct {
	model Model
	opts  options
}

// NewCorrector validates model and returns a Corrector for it.
// Returns ErrInvalidModel (wrapped) for a malformed window.
func NewCorrector(model Model, opts ...Option) (*Corrector, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Corrector{model: model, opts: o}, nil
}

// Model returns the distance window this corrector enforces.
func (c *Corrector) Model() Model { return c.model }

// Step returns the relaxation step δ.
func (c *Corrector) Step() float64 { return c.opts.step }

// Correct relaxes target toward the window around sponsor and returns the
// corrected target plus whether any axis was adjusted. The sponsor is
// never moved. A target that already satisfies the model comes back
// unchanged with moved == false.
//
// Each sweep visits X, Y and Z against the distances measured at the start
// of the sweep; the push/pull direction is the sign of
// (target - sponsor) / d on that axis.
//
// Returns ErrNoConvergence (wrapped, together with the partially corrected
// target) when MaxSweeps sweeps did not settle the pair.
func (c *Corrector) Correct(sponsor, target r3.Vec) (r3.Vec, bool, error) {
	lo, hi := components(c.model.Min), components(c.model.Max)
	s := components(sponsor)
	t := components(target)
	step := c.opts.step

	moved := false
	d := distance(sponsor, target)
	for sweep := 0; c.model.violated(d); sweep++ {
		if sweep == c.opts.maxSweeps {
			return fromComponents(t), moved, fmt.Errorf("%w: %d sweeps, distance %v, window [%v, %v]",
				ErrNoConvergence, sweep, fromComponents(d), c.model.Min, c.model.Max)
		}
		for a := range t {
			// Too close: push away. Coincident points stay put.
			if d[a] < lo[a] && d[a] != 0 {
				t[a] += (t[a] - s[a]) / d[a] * step
				moved = true
			}
			// Too far: pull closer. Validate guarantees hi >= 0, so d > 0 here.
			if d[a] > hi[a] {
				t[a] -= (t[a] - s[a]) / d[a] * step
				moved = true
			}
		}
		d = distance(fromComponents(s), fromComponents(t))
	}

	return fromComponents(t), moved, nil
}
