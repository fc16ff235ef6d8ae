// SPDX-License-Identifier: MIT

package constraint

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for constraint validation and correction.
var (
	// ErrInvalidModel indicates a distance window that can never be satisfied.
	ErrInvalidModel = errors.New("constraint: invalid distance model")

	// ErrNoConvergence indicates Correct exhausted its sweep budget.
	ErrNoConvergence = errors.New("constraint: correction did not converge")
)

const (
	// DefaultStep is the fixed relaxation step δ.
	DefaultStep = 0.02
	// DefaultMaxSweeps bounds a single Correct call.
	DefaultMaxSweeps = 1 << 20
)

var axisNames = [3]string{"x", "y", "z"}

// Model is the per-axis distance window between adjacent nodes.
type Model struct {
	// Min is the smallest allowed non-zero absolute distance per axis.
	Min r3.Vec
	// Max is the largest allowed absolute distance per axis.
	Max r3.Vec
}

// Validate reports ErrInvalidModel, wrapped with the offending axis, when
// a bound is NaN or infinite, when Max is negative, or when Min exceeds Max.
func (m Model) Validate() error {
	lo, hi := components(m.Min), components(m.Max)
	for a := range lo {
		switch {
		case !finite(lo[a]) || !finite(hi[a]):
			return fmt.Errorf("%w: axis %s has a non-finite bound (min=%v, max=%v)",
				ErrInvalidModel, axisNames[a], lo[a], hi[a])
		case hi[a] < 0:
			return fmt.Errorf("%w: axis %s max %v < 0", ErrInvalidModel, axisNames[a], hi[a])
		case lo[a] > hi[a]:
			return fmt.Errorf("%w: axis %s min %v > max %v", ErrInvalidModel, axisNames[a], lo[a], hi[a])
		}
	}

	return nil
}

// Satisfied reports whether target already respects the window relative to
// sponsor: on every axis the distance is 0 or lies in [Min, Max].
func (m Model) Satisfied(sponsor, target r3.Vec) bool {
	return !m.violated(distance(sponsor, target))
}

// violated is the loop condition of Correct.
func (m Model) violated(d [3]float64) bool {
	lo, hi := components(m.Min), components(m.Max)
	for a := range d {
		if (d[a] != 0 && d[a] < lo[a]) || d[a] > hi[a] {
			return true
		}
	}

	return false
}

// distance returns the per-axis absolute difference |target - sponsor|.
func distance(sponsor, target r3.Vec) [3]float64 {
	diff := components(r3.Sub(target, sponsor))

	return [3]float64{math.Abs(diff[0]), math.Abs(diff[1]), math.Abs(diff[2])}
}

func components(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func fromComponents(c [3]float64) r3.Vec {
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
