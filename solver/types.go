// Package solver provides options, result types and error definitions
// for breadth-first maze solving.
package solver

import (
	"errors"
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// Sentinel errors for solving and reconstruction.
var (
	// ErrNilGrid is returned when a nil grid or distance map is passed.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrNoPath is returned when no path can be traced to distance 0.
	ErrNoPath = errors.New("solver: no path")

	// ErrMalformedDistanceMap is returned when a recorded cell has no
	// neighbor one step closer to the source.
	ErrMalformedDistanceMap = fmt.Errorf("%w: malformed distance map", ErrNoPath)
)

// Unvisited marks a cell that holds no distance.
const Unvisited = -1

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the solver's policy and hooks.
type Options struct {
	// EarlyExit stops the search once the target is dequeued.
	EarlyExit bool

	// OnVisit, if set, is called for every explored cell with its final
	// distance. A non-nil error aborts Solve and is returned wrapped.
	OnVisit func(c grid.Coord, d int) error
}

// DefaultOptions returns exhaustive search with no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithEarlyExit stops the search as soon as the target's distance is final.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithOnVisit registers a callback run for every explored cell.
func WithOnVisit(fn func(c grid.Coord, d int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Solve:
//   - Explored: cells assigned a final distance.
//   - ExploredRooms: how many of those are rooms.
//   - Distance: lattice steps from source to target, or Unvisited.
//   - Reachable: whether the target was reached.
//   - Distances: the distance map built by the search.
//   - Path: source → target, nil when unreachable.
type Result struct {
	Explored      int
	ExploredRooms int
	Distance      int
	Reachable     bool
	Distances     *DistanceMap
	Path          []grid.Coord
}

// DoorsCrossed returns the number of doors on Path, i.e. the path length
// counted in room-to-room moves.
func (r *Result) DoorsCrossed() int {
	if r == nil || r.Distances == nil {
		return 0
	}
	g := r.Distances.Grid()
	n := 0
	for _, c := range r.Path {
		if g.IsDoor(c) {
			n++
		}
	}
	return n
}
