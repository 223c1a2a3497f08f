package grid

import (
	"fmt"
	"math"
)

// New allocates a lattice with rooms[i] rooms along axis i. Rooms start Open,
// every other cell starts as a Wall.
// Returns ErrInvalidDimensions if fewer than two axes are given, any count
// is < 1, or the cell count overflows.
// Complexity: O(cells) time and memory.
func New(rooms ...int) (*Grid, error) {
	if len(rooms) < 2 {
		return nil, fmt.Errorf("%w: got %d axes", ErrInvalidDimensions, len(rooms))
	}
	g := &Grid{
		rooms:    make([]int, len(rooms)),
		extents:  make([]int, len(rooms)),
		strides:  make([]int, len(rooms)),
		entrance: -1,
		exit:     -1,
	}
	total := 1
	for axis, k := range rooms {
		if k < 1 {
			return nil, fmt.Errorf("%w: axis %d has %d rooms", ErrInvalidDimensions, axis, k)
		}
		if k > (math.MaxInt-1)/2 {
			return nil, fmt.Errorf("%w: axis %d is too large", ErrInvalidDimensions, axis)
		}
		ext := 2*k + 1
		if total > math.MaxInt/ext {
			return nil, fmt.Errorf("%w: the lattice is too big", ErrInvalidDimensions)
		}
		g.rooms[axis] = k
		g.extents[axis] = ext
		g.strides[axis] = total
		total *= ext
	}
	g.cells = make([]Cell, total)
	for i := range g.cells {
		if g.isRoomIndex(i) {
			g.cells[i] = Open
		}
	}
	return g, nil
}

// Dim returns the number of axes.
func (g *Grid) Dim() int {
	return len(g.extents)
}

// Rooms returns a copy of the per-axis room counts.
func (g *Grid) Rooms() []int {
	return append([]int(nil), g.rooms...)
}

// Shape returns a copy of the per-axis lattice extents (2k+1 each).
func (g *Grid) Shape() []int {
	return append([]int(nil), g.extents...)
}

// Len returns the total number of lattice cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether c has the grid's rank and lies inside the lattice.
// Complexity: O(dim).
func (g *Grid) InBounds(c Coord) bool {
	if len(c) != len(g.extents) {
		return false
	}
	for axis, v := range c {
		if v < 0 || v >= g.extents[axis] {
			return false
		}
	}
	return true
}

// Index maps an in-bounds coordinate to its linear index, or -1.
// Complexity: O(dim).
func (g *Grid) Index(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	idx := 0
	for axis, v := range c {
		idx += v * g.strides[axis]
	}
	return idx
}

// Coordinate converts a linear index back to a coordinate.
// Complexity: O(dim).
func (g *Grid) Coordinate(idx int) Coord {
	c := make(Coord, len(g.extents))
	for axis := range g.extents {
		c[axis] = g.axisCoord(idx, axis)
	}
	return c
}

// axisCoord extracts the coordinate of idx along one axis.
func (g *Grid) axisCoord(idx, axis int) int {
	return (idx / g.strides[axis]) % g.extents[axis]
}

// At returns the cell at c; out-of-bounds positions read as Wall.
func (g *Grid) At(c Coord) Cell {
	i := g.Index(c)
	if i < 0 {
		return Wall
	}
	return g.cells[i]
}

// AtIndex returns the cell at a linear index.
func (g *Grid) AtIndex(i int) Cell {
	return g.cells[i]
}

// Set overwrites the cell at c. Returns ErrOutOfBounds for bad coordinates.
func (g *Grid) Set(c Coord, cell Cell) error {
	i := g.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[i] = cell
	return nil
}

// SetIndex overwrites the cell at a linear index.
func (g *Grid) SetIndex(i int, cell Cell) {
	g.cells[i] = cell
}

// Neighbors returns the passable cells adjacent to c, in axis order with the
// negative direction first. Out-of-bounds c yields nil.
// Complexity: O(dim).
func (g *Grid) Neighbors(c Coord) []Coord {
	i := g.Index(c)
	if i < 0 {
		return nil
	}
	var buf [8]int
	idx := g.NeighborIndices(i, buf[:0])
	out := make([]Coord, len(idx))
	for k, n := range idx {
		out[k] = g.Coordinate(n)
	}
	return out
}

// NeighborIndices appends to dst the linear indices of the passable cells
// adjacent to i, in the same fixed order as Neighbors, and returns dst.
// Complexity: O(dim), no allocation when dst has capacity 2·dim.
func (g *Grid) NeighborIndices(i int, dst []int) []int {
	for axis, stride := range g.strides {
		v := g.axisCoord(i, axis)
		if v > 0 && g.cells[i-stride].Passable() {
			dst = append(dst, i-stride)
		}
		if v < g.extents[axis]-1 && g.cells[i+stride].Passable() {
			dst = append(dst, i+stride)
		}
	}
	return dst
}

// IsRoom reports whether every coordinate of c is odd.
func (g *Grid) IsRoom(c Coord) bool {
	i := g.Index(c)
	return i >= 0 && g.isRoomIndex(i)
}

func (g *Grid) isRoomIndex(i int) bool {
	for axis := range g.extents {
		if g.axisCoord(i, axis)%2 == 0 {
			return false
		}
	}
	return true
}

// IsDoor reports whether c is an interior cell with exactly one even
// coordinate, i.e. a cell separating two rooms.
func (g *Grid) IsDoor(c Coord) bool {
	return g.DoorAxis(c) >= 0
}

// DoorAxis returns the axis a door separates its rooms along, or -1 when c
// is not a door.
func (g *Grid) DoorAxis(c Coord) int {
	i := g.Index(c)
	if i < 0 {
		return -1
	}
	return g.doorAxisIndex(i)
}

func (g *Grid) doorAxisIndex(i int) int {
	axis := -1
	for a, ext := range g.extents {
		v := g.axisCoord(i, a)
		if v == 0 || v == ext-1 {
			return -1
		}
		if v%2 == 0 {
			if axis >= 0 {
				return -1
			}
			axis = a
		}
	}
	return axis
}

// Flanks returns the linear indices of the two rooms a door separates.
// ok is false when i is not a door.
func (g *Grid) Flanks(i int) (a, b int, ok bool) {
	axis := g.doorAxisIndex(i)
	if axis < 0 {
		return -1, -1, false
	}
	s := g.strides[axis]
	return i - s, i + s, true
}

// RoomCount returns the number of rooms (product of the room counts).
func (g *Grid) RoomCount() int {
	n := 1
	for _, k := range g.rooms {
		n *= k
	}
	return n
}

// OpenDoors counts the doors currently passable.
// Complexity: O(cells·dim).
func (g *Grid) OpenDoors() int {
	n := 0
	for i, c := range g.cells {
		if c.Passable() && g.doorAxisIndex(i) >= 0 {
			n++
		}
	}
	return n
}

// ClosedDoors counts the doors still walled.
// Complexity: O(cells·dim).
func (g *Grid) ClosedDoors() int {
	n := 0
	for i, c := range g.cells {
		if !c.Passable() && g.doorAxisIndex(i) >= 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
// Complexity: O(cells).
func (g *Grid) Clone() *Grid {
	return &Grid{
		rooms:    append([]int(nil), g.rooms...),
		extents:  append([]int(nil), g.extents...),
		strides:  append([]int(nil), g.strides...),
		cells:    append([]Cell(nil), g.cells...),
		entrance: g.entrance,
		exit:     g.exit,
	}
}

// WithPath returns a copy of g in which every Open cell of path is marked
// Path. Walls, Entrance and Exit are left as they are, so the endpoints of a
// path stay visible.
// Complexity: O(cells + len(path)·dim).
func (g *Grid) WithPath(path []Coord) *Grid {
	out := g.Clone()
	for _, c := range path {
		i := out.Index(c)
		if i >= 0 && out.cells[i] == Open {
			out.cells[i] = Path
		}
	}
	return out
}
