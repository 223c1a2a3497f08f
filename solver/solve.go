package solver

import (
	"fmt"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// frontierItem pairs a cell index with the distance it was reached at.
type frontierItem struct {
	idx  int
	dist int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g      *grid.Grid
	opts   Options
	target int
	queue  []frontierItem
	nbrs   []int
	res    *Result
}

// Solve runs breadth-first search on g from source and reports the distance
// to target.
//
// The frontier is a FIFO of (cell, distance) seeded with (source, 0). A
// dequeued entry is stale when its cell already holds a distance no greater
// than the entry's; otherwise the distance is recorded, the cell counts as
// explored, and every passable neighbor is enqueued one step further.
//
// Returns ErrNilGrid for a nil g, grid.ErrInvalidEndpoint (wrapped) for a
// source or target that is out of bounds or a wall, or the wrapped error of
// an OnVisit hook. An unreachable target yields Reachable=false and
// Distance=Unvisited with a nil error.
// Complexity: O(C·D) time and memory.
func Solve(g *grid.Grid, source, target grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src, err := endpoint(g, "source", source)
	if err != nil {
		return nil, err
	}
	dst, err := endpoint(g, "target", target)
	if err != nil {
		return nil, err
	}

	w := &walker{
		g:      g,
		opts:   o,
		target: dst,
		queue:  make([]frontierItem, 0, 64),
		nbrs:   make([]int, 0, 2*g.Dim()),
		res: &Result{
			Distance:  Unvisited,
			Distances: NewDistanceMap(g),
		},
	}
	w.queue = append(w.queue, frontierItem{idx: src, dist: 0})
	if err := w.loop(); err != nil {
		return nil, err
	}

	res := w.res
	res.Distance = res.Distances.AtIndex(dst)
	res.Reachable = res.Distance != Unvisited
	if res.Reachable {
		if res.Path, err = Trace(g, res.Distances, target); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// endpoint resolves a solve endpoint to its index.
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

// loop drains the frontier, or stops at the target under EarlyExit.
func (w *walker) loop() error {
	dm := w.res.Distances
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if d := dm.dist[item.idx]; d != Unvisited && d <= item.dist {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.EarlyExit && item.idx == w.target {
			return nil
		}
		w.nbrs = w.g.NeighborIndices(item.idx, w.nbrs[:0])
		for _, n := range w.nbrs {
			w.queue = append(w.queue, frontierItem{idx: n, dist: item.dist + 1})
		}
	}
	return nil
}

// visit records the final distance of a cell and calls OnVisit.
func (w *walker) visit(item frontierItem) error {
	w.res.Distances.dist[item.idx] = item.dist
	w.res.Explored++
	c := w.g.Coordinate(item.idx)
	if w.g.IsRoom(c) {
		w.res.ExploredRooms++
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c, item.dist); err != nil {
			return fmt.Errorf("solver: OnVisit error at %v: %w", c, err)
		}
	}
	return nil
}
