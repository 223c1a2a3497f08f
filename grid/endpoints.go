package grid

import "fmt"

// DefaultEndpoints returns the conventional entrance/exit pair: the boundary
// cell just before the first room along axis 0, and the boundary cell just
// after the last room.
//
//	2×2 rooms:  A . # . #      A = (0,1)
//	            ...            B = (4,3)
//	            # . # . B
func (g *Grid) DefaultEndpoints() (entrance, exit Coord) {
	entrance = make(Coord, g.Dim())
	exit = make(Coord, g.Dim())
	for axis, ext := range g.extents {
		entrance[axis] = 1
		exit[axis] = ext - 2
	}
	entrance[0] = 0
	exit[0] = g.extents[0] - 1
	return entrance, exit
}

// ValidateEndpoint checks that c can host an entrance or exit: it must lie on
// the lattice boundary, be a Wall, and touch exactly one passable cell.
// Returns the linear index of that single neighbor.
// Errors are ErrInvalidEndpoint wrapped with the reason.
// Complexity: O(dim).
func (g *Grid) ValidateEndpoint(c Coord) (int, error) {
	i := g.Index(c)
	if i < 0 {
		return -1, fmt.Errorf("%w: %v is out of bounds", ErrInvalidEndpoint, c)
	}
	if !g.onBoundary(i) {
		return -1, fmt.Errorf("%w: %v is not on the boundary", ErrInvalidEndpoint, c)
	}
	if g.cells[i] != Wall {
		return -1, fmt.Errorf("%w: %v is %s, want wall", ErrInvalidEndpoint, c, g.cells[i])
	}
	var buf [8]int
	nbrs := g.NeighborIndices(i, buf[:0])
	if len(nbrs) != 1 {
		return -1, fmt.Errorf("%w: %v has %d passable neighbors, want 1", ErrInvalidEndpoint, c, len(nbrs))
	}
	return nbrs[0], nil
}

// PlaceEndpoints marks entrance and exit after validating the pair: each
// must pass ValidateEndpoint, they must differ, and they must open onto
// different cells. Previously placed endpoints are turned back into walls
// first; on error the grid is left as it was.
// Complexity: O(dim).
func (g *Grid) PlaceEndpoints(entrance, exit Coord) error {
	oldEntrance, oldExit := g.entrance, g.exit
	g.clearEndpoints()

	err := g.checkPair(entrance, exit)
	if err != nil {
		g.restoreEndpoints(oldEntrance, oldExit)
		return err
	}
	g.entrance = g.Index(entrance)
	g.exit = g.Index(exit)
	g.cells[g.entrance] = Entrance
	g.cells[g.exit] = Exit
	return nil
}

func (g *Grid) checkPair(entrance, exit Coord) error {
	if entrance.Equal(exit) {
		return fmt.Errorf("%w: entrance and exit are both %v", ErrInvalidEndpoint, entrance)
	}
	inA, err := g.ValidateEndpoint(entrance)
	if err != nil {
		return fmt.Errorf("entrance: %w", err)
	}
	inB, err := g.ValidateEndpoint(exit)
	if err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	if inA == inB {
		return fmt.Errorf("%w: entrance %v and exit %v share their only neighbor %v",
			ErrInvalidEndpoint, entrance, exit, g.Coordinate(inA))
	}
	if manhattan(entrance, exit) == 1 {
		return fmt.Errorf("%w: entrance %v and exit %v touch", ErrInvalidEndpoint, entrance, exit)
	}
	return nil
}

func manhattan(a, b Coord) int {
	d := 0
	for i := range a {
		if a[i] > b[i] {
			d += a[i] - b[i]
		} else {
			d += b[i] - a[i]
		}
	}
	return d
}

func (g *Grid) clearEndpoints() {
	if g.entrance >= 0 {
		g.cells[g.entrance] = Wall
	}
	if g.exit >= 0 {
		g.cells[g.exit] = Wall
	}
	g.entrance, g.exit = -1, -1
}

func (g *Grid) restoreEndpoints(entrance, exit int) {
	if entrance >= 0 {
		g.cells[entrance] = Entrance
	}
	if exit >= 0 {
		g.cells[exit] = Exit
	}
	g.entrance, g.exit = entrance, exit
}

// Entrance returns the placed entrance, if any.
func (g *Grid) Entrance() (Coord, bool) {
	if g.entrance < 0 {
		return nil, false
	}
	return g.Coordinate(g.entrance), true
}

// Exit returns the placed exit, if any.
func (g *Grid) Exit() (Coord, bool) {
	if g.exit < 0 {
		return nil, false
	}
	return g.Coordinate(g.exit), true
}

func (g *Grid) onBoundary(i int) bool {
	for axis, ext := range g.extents {
		v := g.axisCoord(i, axis)
		if v == 0 || v == ext-1 {
			return true
		}
	}
	return false
}
