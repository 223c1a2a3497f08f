package generator

import (
	"math/rand"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// noLabel marks a wall in the label lattice.
const noLabel = -1

// labeler is the generation-time state: one component label per passable
// cell, the work-list reused across propagations, and the door picker.
type labeler struct {
	g     *grid.Grid
	label []int
	stack []int
	nbrs  []int

	rooms []int // rooms per axis
	axes  []int // axes with at least two rooms, i.e. with doors
	pick  grid.Coord
}

func newLabeler(g *grid.Grid) *labeler {
	l := &labeler{
		g:     g,
		label: make([]int, g.Len()),
		nbrs:  make([]int, 0, 2*g.Dim()),
		rooms: g.Rooms(),
		pick:  make(grid.Coord, g.Dim()),
	}
	for axis, k := range l.rooms {
		if k > 1 {
			l.axes = append(l.axes, axis)
		}
	}
	return l
}

// seedRooms gives every passable cell its own index as label.
func (l *labeler) seedRooms() {
	for i := range l.label {
		if l.g.AtIndex(i).Passable() {
			l.label[i] = i
		} else {
			l.label[i] = noLabel
		}
	}
}

// seedComponents labels every passable cell with the smallest index of its
// component, which is the state propagation converges to.
func (l *labeler) seedComponents() {
	for i := range l.label {
		l.label[i] = noLabel
	}
	for _, comp := range l.g.ConnectedComponents() {
		for _, i := range comp {
			l.label[i] = comp[0]
		}
	}
}

// randomDoor draws an axis, then a door position along it: an even
// coordinate on that axis, odd ones elsewhere. ok is false when the grid has
// no doors at all.
func (l *labeler) randomDoor(r *rand.Rand) (idx int, ok bool) {
	if len(l.axes) == 0 {
		return -1, false
	}
	axis := l.axes[r.Intn(len(l.axes))]
	for b, k := range l.rooms {
		if b == axis {
			l.pick[b] = 2 * (1 + r.Intn(k-1))
		} else {
			l.pick[b] = 2*r.Intn(k) + 1
		}
	}
	return l.g.Index(l.pick), true
}

// flankLabels returns the labels of the two rooms a door separates.
func (l *labeler) flankLabels(door int) (a, b int) {
	ia, ib, ok := l.g.Flanks(door)
	if !ok {
		return noLabel, noLabel
	}
	return l.label[ia], l.label[ib]
}

// propagate opens start and merges everything it touches into the minimum
// label around it. Each popped cell takes the minimum label among its open
// neighbors; neighbors holding a strictly greater label are pushed. A cell
// without open neighbors is left as it is, so an isolated start stays a
// wall and propagate reports false.
func (l *labeler) propagate(start int) bool {
	opened := false
	l.stack = append(l.stack[:0], start)
	for len(l.stack) > 0 {
		c := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]

		l.nbrs = l.g.NeighborIndices(c, l.nbrs[:0])
		if len(l.nbrs) == 0 {
			continue
		}
		m := l.label[l.nbrs[0]]
		for _, n := range l.nbrs[1:] {
			if l.label[n] < m {
				m = l.label[n]
			}
		}
		l.label[c] = m
		if c == start && !l.g.AtIndex(c).Passable() {
			l.g.SetIndex(c, grid.Open)
			opened = true
		}
		// Reverse push keeps the first neighbor on top, like the call order
		// of a recursive descent.
		for k := len(l.nbrs) - 1; k >= 0; k-- {
			if n := l.nbrs[k]; l.label[n] > m {
				l.stack = append(l.stack, n)
			}
		}
	}
	return opened
}
