// SPDX-License-Identifier: MIT

package propagate

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/linkgrid/lattice"
)

// Sentinel errors for engine construction and deformation.
var (
	// ErrNilStore is returned by New when the store is nil.
	ErrNilStore = errors.New("propagate: store is nil")

	// ErrSeedNotFound is returned by Deform when the seed is not in the grid.
	ErrSeedNotFound = errors.New("propagate: seed index not found")
)

// task is a pending correction: re-check target relative to sponsor.
type task struct {
	sponsor lattice.Index
	target  lattice.Index
}

// Correction describes one corrector invocation during Deform.
type Correction struct {
	// Direction is the queue the task was taken from.
	Direction lattice.Direction
	// Sponsor is the settled node the target was measured against.
	Sponsor lattice.Index
	// Target is the node that was checked.
	Target lattice.Index
	// Moved reports whether the corrector changed the target's position.
	Moved bool
}

// Result summarizes one Deform call.
type Result struct {
	// Seed is the displaced node.
	Seed lattice.Index
	// Corrected lists moved targets in the order they were corrected.
	Corrected []lattice.Index
	// Sponsor maps every corrected target to the sponsor that won it.
	Sponsor map[lattice.Index]lattice.Index
	// Checked counts corrector invocations, moved or not.
	Checked int
	// Skipped counts stale tasks dropped because their target was
	// already corrected.
	Skipped int
	// Passes counts sweeps over the direction queues.
	Passes int
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	topology  lattice.Topology
	step      float64
	maxSweeps int
	logger    *log.Logger
	onCorrect func(Correction)
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		logger:    log.New(io.Discard),
		onCorrect: func(Correction) {},
	}
}

// WithTopology replaces the default FourWay topology.
// A nil topology is ignored.
func WithTopology(t lattice.Topology) Option {
	return func(o *engineOptions) {
		if t != nil {
			o.topology = t
		}
	}
}

// WithStep sets the corrector's relaxation step.
// Panics if step <= 0, like constraint.WithStep.
func WithStep(step float64) Option {
	if step <= 0 {
		panic("propagate: WithStep(step<=0)")
	}
	return func(o *engineOptions) { o.step = step }
}

// WithMaxSweeps bounds every single correction. Panics if n < 1.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic("propagate: WithMaxSweeps(n<1)")
	}
	return func(o *engineOptions) { o.maxSweeps = n }
}

// WithLogger attaches a logger; corrections are traced at debug level.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnCorrect registers a hook called after every corrector invocation.
func WithOnCorrect(fn func(Correction)) Option {
	return func(o *engineOptions) {
		if fn != nil {
			o.onCorrect = fn
		}
	}
}
