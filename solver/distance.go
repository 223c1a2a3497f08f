package solver

import (
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// DistanceMap holds one distance per cell of a grid, Unvisited where none
// is recorded. A well-formed map has, for every cell at d > 0, a passable
// neighbor at d-1.
type DistanceMap struct {
	g    *grid.Grid
	dist []int
}

// NewDistanceMap returns a map shaped like g with every cell Unvisited.
// Complexity: O(cells).
func NewDistanceMap(g *grid.Grid) *DistanceMap {
	dm := &DistanceMap{g: g, dist: make([]int, g.Len())}
	dm.Reset()
	return dm
}

// Reset marks every cell Unvisited.
func (dm *DistanceMap) Reset() {
	for i := range dm.dist {
		dm.dist[i] = Unvisited
	}
}

// Grid returns the grid the map was built for.
func (dm *DistanceMap) Grid() *grid.Grid {
	return dm.g
}

// Len returns the number of cells covered.
func (dm *DistanceMap) Len() int {
	return len(dm.dist)
}

// At returns the distance at c; out-of-bounds reads as Unvisited.
func (dm *DistanceMap) At(c grid.Coord) int {
	i := dm.g.Index(c)
	if i < 0 {
		return Unvisited
	}
	return dm.dist[i]
}

// AtIndex returns the distance at linear index i.
func (dm *DistanceMap) AtIndex(i int) int {
	return dm.dist[i]
}

// Set records d at c. Any negative d stores Unvisited.
// Returns grid.ErrOutOfBounds for coordinates outside the lattice.
func (dm *DistanceMap) Set(c grid.Coord, d int) error {
	i := dm.g.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
	}
	dm.SetIndex(i, d)
	return nil
}

// SetIndex records d at linear index i. Any negative d stores Unvisited.
func (dm *DistanceMap) SetIndex(i, d int) {
	if d < 0 {
		d = Unvisited
	}
	dm.dist[i] = d
}

// Visited reports whether c holds a distance.
func (dm *DistanceMap) Visited(c grid.Coord) bool {
	return dm.At(c) != Unvisited
}

// Recorded counts the cells holding a distance.
func (dm *DistanceMap) Recorded() int {
	n := 0
	for _, d := range dm.dist {
		if d != Unvisited {
			n++
		}
	}
	return n
}

// Clone returns an independent copy sharing the same grid reference.
func (dm *DistanceMap) Clone() *DistanceMap {
	return &DistanceMap{g: dm.g, dist: append([]int(nil), dm.dist...)}
}

// compatible reports whether dm can be read against g.
func (dm *DistanceMap) compatible(g *grid.Grid) bool {
	if dm.g == g {
		return true
	}
	a, b := dm.g.Shape(), g.Shape()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
