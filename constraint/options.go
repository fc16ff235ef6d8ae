// SPDX-License-Identifier: MIT

package constraint

// Option configures a Corrector.
// Option constructors panic on meaningless values; Correct never panics.
type Option func(*options)

type options struct {
	step      float64
	maxSweeps int
}

func defaultOptions() options {
	return options{step: DefaultStep, maxSweeps: DefaultMaxSweeps}
}

// WithStep sets the relaxation step δ. Panics if step <= 0 or is not finite.
func WithStep(step float64) Option {
	if step <= 0 || !finite(step) {
		panic("constraint: WithStep(step<=0)")
	}
	return func(o *options) { o.step = step }
}

// WithMaxSweeps bounds the number of sweeps a single Correct call may run.
// Panics if n < 1.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic("constraint: WithMaxSweeps(n<1)")
	}
	return func(o *options) { o.maxSweeps = n }
}
