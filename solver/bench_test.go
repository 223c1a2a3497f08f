package solver_test

import (
	"testing"

	"github.com/au2001-efrei/Labyrinth/generator"
	"github.com/au2001-efrei/Labyrinth/grid"
	"github.com/au2001-efrei/Labyrinth/solver"
)

func benchMaze(b *testing.B, rooms []int) (*grid.Grid, grid.Coord, grid.Coord) {
	b.Helper()
	g, err := generator.Generate(rooms, generator.WithSeed(1), generator.WithCycles(50))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	in, out := g.DefaultEndpoints()
	if err := g.PlaceEndpoints(in, out); err != nil {
		b.Fatalf("setup PlaceEndpoints failed: %v", err)
	}
	return g, in, out
}

// BenchmarkSolve_Exhaustive drains the frontier of a 150×150 maze.
// Complexity: O(C·D) per iteration.
func BenchmarkSolve_Exhaustive(b *testing.B) {
	g, in, out := benchMaze(b, []int{150, 150})
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := solver.Solve(g, in, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_EarlyExit stops at the exit of the same maze.
func BenchmarkSolve_EarlyExit(b *testing.B) {
	g, in, out := benchMaze(b, []int{150, 150})
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := solver.Solve(g, in, out, solver.WithEarlyExit()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_3D solves a 25×25×25 maze exhaustively.
func BenchmarkSolve_3D(b *testing.B) {
	g, in, out := benchMaze(b, []int{25, 25, 25})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := solver.Solve(g, in, out); err != nil {
			b.Fatal(err)
		}
	}
}
