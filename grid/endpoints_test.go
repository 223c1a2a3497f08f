package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// openLine returns a 2×1 grid with its single door open:
//
//	# # # # #
//	# . . . #
//	# # # # #
func openLine(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.Coord{2, 1}, grid.Open))
	return g
}

// boundaryCells lists every boundary coordinate of a 2-D grid.
func boundaryCells(g *grid.Grid) []grid.Coord {
	shape := g.Shape()
	var out []grid.Coord
	for y := 0; y < shape[1]; y++ {
		for x := 0; x < shape[0]; x++ {
			if x == 0 || y == 0 || x == shape[0]-1 || y == shape[1]-1 {
				out = append(out, grid.Coord{x, y})
			}
		}
	}
	return out
}

func TestDefaultEndpoints(t *testing.T) {
	g := openLine(t)
	entrance, exit := g.DefaultEndpoints()
	assert.Equal(t, grid.Coord{0, 1}, entrance)
	assert.Equal(t, grid.Coord{4, 1}, exit)

	g3, err := grid.New(3, 2, 2)
	require.NoError(t, err)
	entrance, exit = g3.DefaultEndpoints()
	assert.Equal(t, grid.Coord{0, 1, 1}, entrance)
	assert.Equal(t, grid.Coord{6, 3, 3}, exit)
}

func TestPlaceEndpoints_Success(t *testing.T) {
	g := openLine(t)
	entrance, exit := g.DefaultEndpoints()
	require.NoError(t, g.PlaceEndpoints(entrance, exit))

	assert.Equal(t, grid.Entrance, g.At(entrance))
	assert.Equal(t, grid.Exit, g.At(exit))
	got, ok := g.Entrance()
	require.True(t, ok)
	assert.Equal(t, entrance, got)
	got, ok = g.Exit()
	require.True(t, ok)
	assert.Equal(t, exit, got)

	// Each endpoint is a true dead end.
	assert.Len(t, g.Neighbors(entrance), 1)
	assert.Len(t, g.Neighbors(exit), 1)
}

func TestPlaceEndpoints_Rejections(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.Coord{1, 2}, grid.Open)) // join (1,1) and (1,3)

	cases := []struct {
		name           string
		entrance, exit grid.Coord
	}{
		{"out of bounds", grid.Coord{-1, 1}, grid.Coord{4, 3}},
		{"wrong rank", grid.Coord{0, 1, 0}, grid.Coord{4, 3}},
		{"interior door", grid.Coord{2, 1}, grid.Coord{4, 3}},
		{"room", grid.Coord{0, 1}, grid.Coord{1, 1}},
		{"corner", grid.Coord{0, 0}, grid.Coord{4, 3}},
		{"no passable neighbor", grid.Coord{0, 1}, grid.Coord{2, 0}},
		{"same cell", grid.Coord{0, 1}, grid.Coord{0, 1}},
		{"shared neighbor", grid.Coord{0, 1}, grid.Coord{1, 0}},
		{"touching", grid.Coord{0, 1}, grid.Coord{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.PlaceEndpoints(tc.entrance, tc.exit)
			require.ErrorIs(t, err, grid.ErrInvalidEndpoint)
			_, ok := g.Entrance()
			assert.False(t, ok, "failed placement must not leave an entrance")
		})
	}
}

func TestPlaceEndpoints_ReplaceAndRestore(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.PlaceEndpoints(grid.Coord{0, 1}, grid.Coord{4, 3}))

	// Moving the pair frees the old cells.
	require.NoError(t, g.PlaceEndpoints(grid.Coord{1, 0}, grid.Coord{3, 4}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{0, 1}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{4, 3}))

	// A failed move keeps the current pair.
	require.Error(t, g.PlaceEndpoints(grid.Coord{0, 0}, grid.Coord{4, 3}))
	assert.Equal(t, grid.Entrance, g.At(grid.Coord{1, 0}))
	assert.Equal(t, grid.Exit, g.At(grid.Coord{3, 4}))
	got, ok := g.Exit()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{3, 4}, got)
}

// TestPlaceEndpoints_SingleRoom: a 1×1 grid has boundary candidates, but all
// of them open onto the same room, so no pair can be placed.
func TestPlaceEndpoints_SingleRoom(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	cells := boundaryCells(g)
	for _, a := range cells {
		for _, b := range cells {
			err := g.PlaceEndpoints(a, b)
			require.ErrorIs(t, err, grid.ErrInvalidEndpoint, "pair %v %v", a, b)
		}
	}
}
