package generator

import (
	"github.com/au2001-efrei/Labyrinth/grid"
)

// Generate builds a perfect maze with rooms[i] rooms along axis i.
//
// Every room starts in its own component. Random doors are drawn and opened
// only when they join two different components, until a single component is
// left. The result therefore has exactly RoomCount()-1 open doors, is
// connected, and has one path between any two rooms. WithCycles(k) then
// opens up to k more doors through AddCycles using the same RNG.
//
// No endpoints are placed; see grid.PlaceEndpoints.
//
// Returns grid.ErrInvalidDimensions for unusable room counts and
// ErrOptionViolation for invalid options.
// Complexity: O(R·C) worst case, R rooms and C cells.
func Generate(rooms []int, opts ...Option) (*grid.Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(rooms...)
	if err != nil {
		return nil, err
	}

	l := newLabeler(g)
	l.seedRooms()
	spanningTree(l, &o)

	if o.Cycles > 0 {
		l.seedComponents()
		addCycles(l, o.Cycles, &o)
	}
	return g, nil
}

// spanningTree opens doors between different components until one remains.
func spanningTree(l *labeler, o *Options) {
	components := l.g.RoomCount()
	for components > 1 {
		door, ok := l.randomDoor(o.Rand)
		if !ok {
			return
		}
		if l.g.AtIndex(door).Passable() {
			continue
		}
		if a, b := l.flankLabels(door); a == b {
			continue
		}
		if l.propagate(door) {
			components--
			o.OnOpen(l.g.Coordinate(door))
		}
	}
}
