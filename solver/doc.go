// Package solver computes shortest paths through a grid.Grid with
// breadth-first search and reconstructs them from the resulting distance map.
//
// What
//
//   - Solve(g, source, target, opts...) floods g from source and returns a
//     Result: explored-cell counters, the distance to target (or Unvisited),
//     the full DistanceMap and the shortest path.
//   - Trace(g, dm, from) walks any well-formed DistanceMap back from a cell
//     to the cell of distance 0, choosing the first neighbor (grid order)
//     that holds d-1.
//   - Rollback(g, dm, from, to) erases such a chain from a cell down to a
//     given distance; the interactive tracker uses it to drop dead ends.
//
// Why
//
//   - Room and door cells are unit-weight steps, so BFS distances are exact.
//   - The map, not a parent table, is the result: the same backward walk
//     serves the automatic solve and the interactive tracker.
//
// Termination policy
//
//	Solve is exhaustive by default: the frontier is drained, so the map is
//	valid for any later target. WithEarlyExit stops as soon as the target is
//	dequeued; the distance to the target is the same, the map only covers
//	the cells seen so far. Explored counts cells assigned their final
//	distance, under either policy.
//
// Units
//
//	Distances are lattice steps. Between two rooms every second cell is a
//	door, so Result.DoorsCrossed and Result.ExploredRooms give the same
//	figures in room units.
//
// Complexity (C = cells, D = dimension)
//
//   - Solve: O(C·D) time, O(C·D) memory for the frontier.
//   - Trace: O(d·D) for a target at distance d.
//
// Errors
//
//   - ErrNilGrid for a nil grid or distance map.
//   - grid.ErrInvalidEndpoint (wrapped) when source or target is out of
//     bounds or a wall.
//   - ErrNoPath when tracing from an unvisited cell.
//   - ErrMalformedDistanceMap when a step has no predecessor. It wraps
//     ErrNoPath, so callers that only care about "no path" can test for it.
//
// An unreachable target is not an error: Result.Reachable is false.
package solver
