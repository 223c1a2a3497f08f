package solver

import (
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// Trace reconstructs the path ending at from by walking dm backward: at
// distance d it moves to the first passable neighbor, in grid order, that
// holds d-1, until it reaches distance 0. The path is returned in
// increasing distance order, so it starts at the distance-0 cell and ends
// at from.
//
// On a map where each distance value leads back along a single chain (a
// BFS map, or a tracker trail) the result is a shortest path.
//
// Returns ErrNilGrid for nil inputs, ErrNoPath when from is out of bounds
// or unvisited, and ErrMalformedDistanceMap when dm does not match g or a
// step has no predecessor.
// Complexity: O(d·D).
func Trace(g *grid.Grid, dm *DistanceMap, from grid.Coord) ([]grid.Coord, error) {
	if g == nil || dm == nil {
		return nil, ErrNilGrid
	}
	if !dm.compatible(g) {
		return nil, fmt.Errorf("%w: map shape %v, grid shape %v",
			ErrMalformedDistanceMap, dm.g.Shape(), g.Shape())
	}
	i := g.Index(from)
	if i < 0 {
		return nil, fmt.Errorf("%w: %v is out of bounds", ErrNoPath, from)
	}
	d := dm.dist[i]
	if d == Unvisited {
		return nil, fmt.Errorf("%w: %v is unvisited", ErrNoPath, from)
	}

	path := make([]grid.Coord, d+1)
	path[d] = g.Coordinate(i)
	var buf [8]int
	for d > 0 {
		next := predecessor(g, dm, i, d, buf[:0])
		if next < 0 {
			return nil, fmt.Errorf("%w: %v at distance %d has no neighbor at %d",
				ErrMalformedDistanceMap, g.Coordinate(i), d, d-1)
		}
		i = next
		d--
		path[d] = g.Coordinate(i)
	}
	return path, nil
}

// predecessor returns the first passable neighbor of i holding d-1, or -1.
func predecessor(g *grid.Grid, dm *DistanceMap, i, d int, buf []int) int {
	for _, n := range g.NeighborIndices(i, buf) {
		if dm.dist[n] == d-1 {
			return n
		}
	}
	return -1
}

// Rollback erases the trail ending at from down to and including the cell
// at distance to, using the same predecessor rule as Trace. It returns the
// cell where the walk stopped.
// Returns ErrMalformedDistanceMap when the trail is broken before to, and
// ErrNoPath when from is unvisited or below to. dm may be partly erased
// when the trail turns out to be broken.
// Complexity: O((d - to)·D).
func Rollback(g *grid.Grid, dm *DistanceMap, from grid.Coord, to int) (grid.Coord, error) {
	if g == nil || dm == nil {
		return nil, ErrNilGrid
	}
	if !dm.compatible(g) {
		return nil, fmt.Errorf("%w: map shape %v, grid shape %v",
			ErrMalformedDistanceMap, dm.g.Shape(), g.Shape())
	}
	i := g.Index(from)
	if i < 0 {
		return nil, fmt.Errorf("%w: %v is out of bounds", ErrNoPath, from)
	}
	d := dm.dist[i]
	if d == Unvisited || d < to {
		return nil, fmt.Errorf("%w: %v holds %d, cannot roll back to %d", ErrNoPath, from, d, to)
	}

	var buf [8]int
	dm.dist[i] = Unvisited
	for d > to {
		next := predecessor(g, dm, i, d, buf[:0])
		if next < 0 {
			return nil, fmt.Errorf("%w: %v at distance %d has no neighbor at %d",
				ErrMalformedDistanceMap, g.Coordinate(i), d, d-1)
		}
		i = next
		d--
		dm.dist[i] = Unvisited
	}
	return g.Coordinate(i), nil
}
