// SPDX-License-Identifier: MIT

package propagate

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/linkgrid/constraint"
	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
)

// Engine applies deformations to a link grid and propagates corrections.
// It keeps no state between Deform calls other than the store itself.
type Engine struct {
	store     *linkstore.Store
	topology  lattice.Topology
	corrector *constraint.Corrector
	opts      engineOptions
}

// New binds an engine to store and validates the distance model.
// The topology defaults to lattice.NewFourWay(store.Size()).
// Returns ErrNilStore or a wrapped constraint.ErrInvalidModel; a rejected
// configuration never reaches the corrector.
func New(store *linkstore.Store, model constraint.Model, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var copts []constraint.Option
	if o.step > 0 {
		copts = append(copts, constraint.WithStep(o.step))
	}
	if o.maxSweeps > 0 {
		copts = append(copts, constraint.WithMaxSweeps(o.maxSweeps))
	}
	corrector, err := constraint.NewCorrector(model, copts...)
	if err != nil {
		return nil, fmt.Errorf("propagate: %w", err)
	}

	if o.topology == nil {
		fw, err := lattice.NewFourWay(store.Size())
		if err != nil {
			return nil, fmt.Errorf("propagate: %w", err)
		}
		o.topology = fw
	}

	return &Engine{store: store, topology: o.topology, corrector: corrector, opts: o}, nil
}

// Store returns the grid the engine mutates.
func (e *Engine) Store() *linkstore.Store { return e.store }

// Topology returns the adjacency used for fan-out.
func (e *Engine) Topology() lattice.Topology { return e.topology }

// Model returns the validated distance window.
func (e *Engine) Model() constraint.Model { return e.corrector.Model() }

// Deform shifts the seed link by displacement (X and Y only) and then
// propagates corrections until every direction queue is empty.
//
// Returns ErrSeedNotFound, before touching the grid, when seed is not part
// of it, or a wrapped constraint.ErrNoConvergence when a correction does
// not settle. In the latter case the grid keeps every correction applied
// before the failing one.
//
// Complexity: O(N·D) tasks for N nodes and D directions, times the cost of
// each correction (bounded by the corrector's sweep limit).
func (e *Engine) Deform(displacement r2.Vec, seed lattice.Index) (*Result, error) {
	pos, err := e.store.Position(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedNotFound, seed)
	}
	pos.X += displacement.X
	pos.Y += displacement.Y
	if err := e.store.SetPosition(seed, pos); err != nil {
		return nil, fmt.Errorf("propagate: displace seed: %w", err)
	}

	w := newWalker(e, seed)
	for _, d := range w.dirs {
		if next, ok := e.topology.Neighbour(d, seed); ok {
			w.push(d, task{sponsor: seed, target: next})
		}
	}
	err = w.loop()
	e.opts.logger.Debug("deform settled",
		"seed", seed, "corrected", len(w.res.Corrected),
		"checked", w.res.Checked, "skipped", w.res.Skipped, "passes", w.res.Passes)

	return w.res, err
}

// walker encapsulates the mutable state of one Deform call.
type walker struct {
	e       *Engine
	dirs    []lattice.Direction
	queues  map[lattice.Direction][]task
	visited map[lattice.Index]bool
	res     *Result
}

func newWalker(e *Engine, seed lattice.Index) *walker {
	dirs := e.topology.Directions()
	return &walker{
		e:       e,
		dirs:    dirs,
		queues:  make(map[lattice.Direction][]task, len(dirs)),
		visited: make(map[lattice.Index]bool),
		res: &Result{
			Seed:    seed,
			Sponsor: make(map[lattice.Index]lattice.Index),
		},
	}
}

// push appends t to the queue of direction d.
func (w *walker) push(d lattice.Direction, t task) {
	w.queues[d] = append(w.queues[d], t)
}

// pop removes the oldest task of direction d.
func (w *walker) pop(d lattice.Direction) task {
	q := w.queues[d]
	t := q[0]
	w.queues[d] = q[1:]
	return t
}

// pending reports whether any queue still holds tasks.
func (w *walker) pending() bool {
	for _, d := range w.dirs {
		if len(w.queues[d]) > 0 {
			return true
		}
	}
	return false
}

// loop drains the queues direction by direction, repeating passes until
// nothing is left.
func (w *walker) loop() error {
	for w.pending() {
		w.res.Passes++
		for _, d := range w.dirs {
			for len(w.queues[d]) > 0 {
				t := w.pop(d)
				if w.visited[t.target] {
					w.res.Skipped++
					continue
				}
				if err := w.check(d, t); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// check runs the corrector for one task and, when the target moved, marks
// it visited and queues its unvisited neighbours.
func (w *walker) check(d lattice.Direction, t task) error {
	sponsor, err := w.e.store.Position(t.sponsor)
	if err != nil {
		return fmt.Errorf("propagate: sponsor: %w", err)
	}
	target, err := w.e.store.Position(t.target)
	if err != nil {
		return fmt.Errorf("propagate: target: %w", err)
	}

	corrected, moved, err := w.e.corrector.Correct(sponsor, target)
	w.res.Checked++
	if err != nil {
		return fmt.Errorf("propagate: correcting %v against %v: %w", t.target, t.sponsor, err)
	}
	w.e.opts.logger.Debug("checked", "dir", d, "sponsor", t.sponsor, "target", t.target, "moved", moved)
	w.e.opts.onCorrect(Correction{Direction: d, Sponsor: t.sponsor, Target: t.target, Moved: moved})
	if !moved {
		return nil
	}

	if err := w.e.store.SetPosition(t.target, corrected); err != nil {
		return fmt.Errorf("propagate: target: %w", err)
	}
	w.visited[t.target] = true
	w.res.Corrected = append(w.res.Corrected, t.target)
	w.res.Sponsor[t.target] = t.sponsor

	for _, j := range w.dirs {
		next, ok := w.e.topology.Neighbour(j, t.target)
		if ok && !w.visited[next] {
			w.push(j, task{sponsor: t.target, target: next})
		}
	}
	return nil
}
