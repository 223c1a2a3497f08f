// Package labyrinth generates N-dimensional mazes, solves them, and follows
// a player through them, as four small in-memory packages.
//
// What is labyrinth?
//
//	A pure-Go maze engine built around one lattice type:
//		• grid/      the lattice: rooms on odd coordinates, doors between
//		             them, walls elsewhere; endpoints and components
//		• generator/ randomized Kruskal by label propagation, then optional
//		             cycle injection
//		• solver/    breadth-first distances, path reconstruction, rollback
//		• tracker/   a live player trail that never forks
//
// Why labyrinth?
//
//   - Deterministic: one seeded *rand.Rand drives generation.
//   - No I/O: the packages take room counts, coordinates and moves, and
//     return grids, distance maps, paths and counters. Rendering, saving
//     and scoring belong to the caller.
//   - Hooks instead of logging: WithOnOpen and WithOnVisit expose progress.
//
// Quick ASCII example, the 2×1 maze with default endpoints and its
// shortest path marked:
//
//	#####
//	A...B
//	#####
//
// A demonstration program lives in examples/labyrinth_report.
package labyrinth
