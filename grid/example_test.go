// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"strings"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// glyph is the caller-side rendering used by the examples.
func glyph(c grid.Cell) string {
	switch c {
	case grid.Wall:
		return "#"
	case grid.Entrance:
		return "A"
	case grid.Exit:
		return "B"
	case grid.Path:
		return "o"
	}
	return "."
}

func show(g *grid.Grid) {
	shape := g.Shape()
	for y := 0; y < shape[1]; y++ {
		var b strings.Builder
		for x := 0; x < shape[0]; x++ {
			b.WriteString(glyph(g.At(grid.Coord{x, y})))
		}
		fmt.Println(b.String())
	}
}

// ExampleGrid_PlaceEndpoints opens the single door of a 2×1 lattice and
// places the conventional entrance and exit.
func ExampleGrid_PlaceEndpoints() {
	g, _ := grid.New(2, 1)
	_ = g.Set(grid.Coord{2, 1}, grid.Open)

	entrance, exit := g.DefaultEndpoints()
	if err := g.PlaceEndpoints(entrance, exit); err != nil {
		fmt.Println("error:", err)
		return
	}
	show(g)
	fmt.Println("open doors:", g.OpenDoors())

	// Output:
	// #####
	// A...B
	// #####
	// open doors: 1
}

// ExampleGrid_Neighbors lists the passable neighbors of a door in the fixed
// axis order, negative direction first.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(2, 2)
	_ = g.Set(grid.Coord{2, 1}, grid.Open)

	fmt.Println(g.Neighbors(grid.Coord{2, 1}))
	fmt.Println(g.IsDoor(grid.Coord{2, 1}), g.IsDoor(grid.Coord{2, 2}))

	// Output:
	// [[1 1] [3 1]]
	// true false
}
