// Package grid defines the cell enum, coordinates and sentinel errors
// for the maze lattice.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a room count list that cannot form a lattice.
	ErrInvalidDimensions = errors.New("grid: dimensions must be at least two positive room counts")
	// ErrOutOfBounds indicates a coordinate outside the lattice.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidEndpoint indicates an entrance or exit that cannot be placed.
	ErrInvalidEndpoint = errors.New("grid: invalid endpoint")
)

// Cell is the state of a single lattice position.
type Cell uint8

const (
	// Wall is impassable. Every non-room cell starts as a Wall.
	Wall Cell = iota
	// Open is a passable room or door.
	Open
	// Entrance marks the boundary cell where a walk starts.
	Entrance
	// Exit marks the boundary cell where a walk ends.
	Exit
	// Path is a display annotation on an Open cell lying on a path.
	Path
)

// Passable reports whether a walk may step onto the cell.
func (c Cell) Passable() bool {
	return c != Wall
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Entrance:
		return "entrance"
	case Exit:
		return "exit"
	case Path:
		return "path"
	}
	return fmt.Sprintf("Unknown cell: %d", uint8(c))
}

// Coord is a lattice coordinate, one entry per axis, axis 0 first.
type Coord []int

// Equal reports whether c and o name the same position.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Add returns c+o. Both must have the same rank.
func (c Coord) Add(o Coord) Coord {
	out := make(Coord, len(c))
	for i := range c {
		out[i] = c[i] + o[i]
	}
	return out
}

// UnitVectors returns the 2·dim axis-aligned unit deltas in neighbor order:
// -e0, +e0, -e1, +e1, ...
func UnitVectors(dim int) []Coord {
	out := make([]Coord, 0, 2*dim)
	for axis := 0; axis < dim; axis++ {
		for _, step := range [2]int{-1, 1} {
			d := make(Coord, dim)
			d[axis] = step
			out = append(out, d)
		}
	}
	return out
}

// Grid is an N-dimensional maze lattice. Build one with New.
// extents[i] = 2·rooms[i]+1, strides[i] is the linear step along axis i.
type Grid struct {
	rooms   []int
	extents []int
	strides []int
	cells   []Cell

	entrance int // -1 until PlaceEndpoints succeeds
	exit     int
}
