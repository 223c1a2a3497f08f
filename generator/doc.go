// Package generator builds perfect mazes on a grid.Grid with a randomized
// Kruskal variant that merges components by label propagation instead of
// union-find, and can then widen the tree into a maze with cycles.
//
// What
//
//   - Generate(rooms, opts...) returns a lattice whose open cells form a
//     single spanning tree: exactly RoomCount()-1 doors are open.
//   - AddCycles(g, k, opts...) opens up to k further doors whose two rooms are
//     already connected, adding redundant routes without ever changing
//     connectivity.
//   - WithCycles(k) runs AddCycles as the last step of Generate.
//
// Algorithm
//
//  1. Every room gets a label equal to its linear index; doors are walls.
//  2. Pick a random axis (among axes with at least two rooms) and a random
//     door position along it. Skip it if it is already open, or if its two
//     rooms share a label (tree mode) / do not share one (cycle mode).
//  3. Propagate: the door takes the minimum label of its open neighbors, and
//     every open neighbor holding a strictly greater label is relabeled the
//     same way, until the merged component carries one label. The work-list
//     is an explicit stack, so depth never touches the goroutine stack.
//  4. Tree mode stops when one component is left; cycle mode stops after k
//     doors or when no eligible wall remains.
//
// Labels are generator-internal and discarded; the returned grid only holds
// grid.Wall and grid.Open cells.
//
// Relabeling revisits cells that already carry the right label, so a merge
// costs O(size of the merged component). Which doors get accepted for a
// given seed depends on this exact procedure.
//
// Determinism
//
//	All randomness comes from the *rand.Rand in Options. Without WithSeed or
//	WithRand, DefaultSeed is used, so two calls with the same options build
//	the same maze.
//
// Complexity (R = rooms, C = cells)
//
//   - Time:   O(R·C) worst case for propagation, plus the rejected picks.
//   - Memory: O(C) for labels and the work-list.
//
// Errors
//
//   - grid.ErrInvalidDimensions from Generate for unusable room counts.
//   - ErrNilGrid from AddCycles for a nil grid.
//   - ErrOptionViolation for negative cycle counts or a nil *rand.Rand.
package generator
