package generator

import (
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// AddCycles opens up to count closed doors whose two rooms already belong to
// the same component, and returns how many it opened.
//
// Each accepted door creates one cycle. Doors between different components
// are never touched, so the set of connected components is unchanged. The
// loop stops early, returning fewer than count, when no eligible door is
// left; on a perfect maze of R rooms that is after ClosedDoors() doors.
//
// g may come from Generate or be built by hand. Endpoints already placed are
// treated as ordinary passable cells.
//
// Returns ErrNilGrid for a nil g and ErrOptionViolation for a negative count
// or invalid options. The Cycles option is ignored here.
// Complexity: O(C·dim) setup plus O(C) per accepted door.
func AddCycles(g *grid.Grid, count int, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: count cannot be negative (%d)", ErrOptionViolation, count)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	l := newLabeler(g)
	l.seedComponents()
	return addCycles(l, count, &o), nil
}

// addCycles runs the cycle phase on an already labeled lattice.
func addCycles(l *labeler, count int, o *Options) int {
	eligible := l.eligibleDoors()
	placed := 0
	for placed < count && eligible > 0 {
		door, ok := l.randomDoor(o.Rand)
		if !ok {
			break
		}
		if l.g.AtIndex(door).Passable() {
			continue
		}
		a, b := l.flankLabels(door)
		if a == noLabel || a != b {
			continue
		}
		if l.propagate(door) {
			placed++
			eligible--
			o.OnOpen(l.g.Coordinate(door))
		}
	}
	return placed
}

// eligibleDoors counts closed doors whose flanks share a label. Opening one
// of them merges nothing, so the count only drops by one per accepted door.
func (l *labeler) eligibleDoors() int {
	n := 0
	for i := range l.label {
		if l.g.AtIndex(i).Passable() {
			continue
		}
		a, b := l.flankLabels(i)
		if a != noLabel && a == b {
			n++
		}
	}
	return n
}
