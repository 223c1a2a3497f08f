// Package generator provides tunable options and error definitions
// for maze generation.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// Sentinel errors for generation.
var (
	// ErrNilGrid is returned when AddCycles receives a nil grid.
	ErrNilGrid = errors.New("generator: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// Option configures generation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Generate or AddCycles runs.
type Option func(*Options)

// Options holds the generator's parameters and hooks.
type Options struct {
	// Rand is the only source of randomness.
	Rand *rand.Rand

	// Cycles is the number of extra doors Generate opens after the tree.
	Cycles int

	// OnOpen is called with the coordinate of every door opened.
	OnOpen func(door grid.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Rand seeded with DefaultSeed
//   - no extra cycles
//   - a no-op OnOpen hook.
func DefaultOptions() Options {
	return Options{
		Rand:   rand.New(rand.NewSource(DefaultSeed)),
		Cycles: 0,
		OnOpen: func(grid.Coord) {},
	}
}

// WithSeed seeds a fresh *rand.Rand for reproducible mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. The caller keeps ownership and must not
// share it across goroutines while generation runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithCycles asks Generate to open up to n redundant doors once the spanning
// tree is complete.
//
//	n > 0: add up to n cycles
//	n == 0: perfect maze (default)
//	n < 0: invalid option → ErrOptionViolation
func WithCycles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Cycles cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Cycles = n
	}
}

// WithOnOpen registers a callback run for every opened door.
func WithOnOpen(fn func(door grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
