package tracker

import (
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
	"github.com/au2001-efrei/Labyrinth/solver"
)

// Tracker is one player session over a private copy of a maze.
type Tracker struct {
	g        *grid.Grid
	dist     *solver.DistanceMap
	deltas   []grid.Coord
	source   int
	target   int
	pos      int
	next     int
	explored int
	finished bool
}

// New starts a session at source heading for target. Every cell is
// unvisited except source, which holds 0; the next distance is 1.
// Returns ErrNilGrid for a nil g, and grid.ErrInvalidEndpoint (wrapped) when
// source or target is out of bounds, a wall, or both are the same cell.
// Complexity: O(C) for the grid copy and the distance map.
func New(g *grid.Grid, source, target grid.Coord) (*Tracker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	src, err := endpoint(g, "source", source)
	if err != nil {
		return nil, err
	}
	dst, err := endpoint(g, "target", target)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return nil, fmt.Errorf("%w: source and target are both %v", grid.ErrInvalidEndpoint, source)
	}

	own := g.Clone()
	t := &Tracker{
		g:      own,
		dist:   solver.NewDistanceMap(own),
		deltas: grid.UnitVectors(own.Dim()),
		source: src,
		target: dst,
		pos:    src,
		next:   1,
	}
	t.dist.SetIndex(src, 0)
	return t, nil
}

func endpoint(g *grid.Grid, role string, c grid.Coord) (int, error) {
	i := g.Index(c)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s %v is out of bounds", grid.ErrInvalidEndpoint, role, c)
	}
	if !g.AtIndex(i).Passable() {
		return -1, fmt.Errorf("%w: %s %v is a wall", grid.ErrInvalidEndpoint, role, c)
	}
	return i, nil
}

// ApplyMove moves the player by delta.
//
//   - A destination off the lattice or on a wall is Rejected; state is
//     unchanged and the error is nil.
//   - A destination already on the trail at distance d' rolls the trail back
//     from the current position down to d', the next distance becomes d',
//     and the move then proceeds as usual: Backtracked.
//   - Otherwise the destination records the next distance: Moved.
//
// An accepted move increments Explored and NextDistance. Reaching the target
// closes the session and returns Finished with the full path.
// Returns ErrInvalidDelta, ErrSessionFinished, or a wrapped
// solver.ErrMalformedDistanceMap if the trail was corrupted.
// Complexity: O(D) plus O(k·D) for a rollback of k cells.
func (t *Tracker) ApplyMove(delta grid.Coord) (Outcome, error) {
	if t.finished {
		return Outcome{}, ErrSessionFinished
	}
	if !t.validDelta(delta) {
		return Outcome{}, fmt.Errorf("%w: got %v", ErrInvalidDelta, delta)
	}

	here := t.g.Coordinate(t.pos)
	dest := here.Add(delta)
	idx := t.g.Index(dest)
	if idx < 0 || !t.g.AtIndex(idx).Passable() {
		return Outcome{
			Status:   Rejected,
			Position: here,
			Distance: t.dist.AtIndex(t.pos),
			Explored: t.explored,
		}, nil
	}

	out := Outcome{Status: Moved}
	if d := t.dist.AtIndex(idx); d != solver.Unvisited {
		before := t.next
		if _, err := solver.Rollback(t.g, t.dist, here, d); err != nil {
			return Outcome{}, fmt.Errorf("tracker: rollback to %d: %w", d, err)
		}
		t.next = d
		out.Status = Backtracked
		out.Erased = before - d - 1
	}

	t.pos = idx
	t.dist.SetIndex(idx, t.next)
	out.Distance = t.next
	t.next++
	t.explored++
	out.Position = dest
	out.Explored = t.explored

	if idx == t.target {
		path, err := solver.Trace(t.g, t.dist, dest)
		if err != nil {
			return Outcome{}, fmt.Errorf("tracker: final trail: %w", err)
		}
		t.finished = true
		out.Status = Finished
		out.Length = out.Distance
		out.Path = path
	}
	return out, nil
}

// validDelta reports whether delta is one of the 2·D unit axis steps.
func (t *Tracker) validDelta(delta grid.Coord) bool {
	for _, u := range t.deltas {
		if u.Equal(delta) {
			return true
		}
	}
	return false
}

// Position returns the player's current cell.
func (t *Tracker) Position() grid.Coord {
	return t.g.Coordinate(t.pos)
}

// Source returns the session's start cell.
func (t *Tracker) Source() grid.Coord {
	return t.g.Coordinate(t.source)
}

// Target returns the cell that ends the session.
func (t *Tracker) Target() grid.Coord {
	return t.g.Coordinate(t.target)
}

// NextDistance returns the distance the next fresh cell will record.
func (t *Tracker) NextDistance() int {
	return t.next
}

// Explored returns the number of accepted moves.
func (t *Tracker) Explored() int {
	return t.explored
}

// Finished reports whether the target was reached.
func (t *Tracker) Finished() bool {
	return t.finished
}

// Grid returns the session's private grid. Callers must not modify it.
func (t *Tracker) Grid() *grid.Grid {
	return t.g
}

// Distances returns a copy of the trail's distance map.
func (t *Tracker) Distances() *solver.DistanceMap {
	return t.dist.Clone()
}

// Trail returns the recorded path from source to the current position.
func (t *Tracker) Trail() ([]grid.Coord, error) {
	return solver.Trace(t.g, t.dist, t.g.Coordinate(t.pos))
}

// Annotated returns a copy of the grid with the current trail marked as
// grid.Path.
func (t *Tracker) Annotated() (*grid.Grid, error) {
	trail, err := t.Trail()
	if err != nil {
		return nil, err
	}
	return t.g.WithPath(trail), nil
}
