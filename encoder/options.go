package encoder

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("encoder: invalid option supplied")

// Option configures Forward behavior via functional arguments.
// An invalid Option (e.g. non-positive time steps) is recorded internally
// and surfaced as ErrOptionViolation when Forward is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a Forward call.
type Options struct {
	// TimeSteps is the number of synchronized message-passing rounds.
	// Must be >= 1.
	TimeSteps int

	// Parallelism is the number of batch-dimension workers. Graphs are
	// fully independent, so workers never share mutable state; results are
	// bit-identical at any level. 1 means strictly sequential.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - a single time step
//   - sequential execution (Parallelism == 1)
func DefaultOptions() Options {
	return Options{TimeSteps: 1, Parallelism: 1}
}

// WithTimeSteps sets the number of message-passing rounds.
//
//	t >= 1: run t rounds
//	t <  1: invalid option → ErrOptionViolation
func WithTimeSteps(t int) Option {
	return func(o *Options) {
		if t < 1 {
			o.err = fmt.Errorf("%w: TimeSteps must be >= 1 (%d)", ErrOptionViolation, t)
			return
		}
		o.TimeSteps = t
	}
}

// WithParallelism sets the number of batch workers.
//
//	p >= 1: use up to p workers (clamped to the batch size)
//	p <  1: invalid option → ErrOptionViolation
func WithParallelism(p int) Option {
	return func(o *Options) {
		if p < 1 {
			o.err = fmt.Errorf("%w: Parallelism must be >= 1 (%d)", ErrOptionViolation, p)
			return
		}
		o.Parallelism = p
	}
}
