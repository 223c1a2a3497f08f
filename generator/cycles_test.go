package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/au2001-efrei/Labyrinth/generator"
	"github.com/au2001-efrei/Labyrinth/grid"
)

// TestAddCycles_Errors covers the nil grid and a negative budget.
func TestAddCycles_Errors(t *testing.T) {
	_, err := generator.AddCycles(nil, 1)
	assert.ErrorIs(t, err, generator.ErrNilGrid)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = generator.AddCycles(g, -1)
	assert.ErrorIs(t, err, generator.ErrOptionViolation)

	_, err = generator.AddCycles(g, 1, generator.WithRand(nil))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)

	n, err := generator.AddCycles(g, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestAddCycles_KeepsComponents builds a 3×2 lattice by hand: a 2×2 block of
// rooms joined as a tree, plus two isolated rooms on the right. Only the
// block's closed door is eligible.
//
//	#######
//	#...#.#    doors (2,1) and (2,3) open
//	#.#####    door (1,2) open, (3,2) and (5,2) closed
//	#...#.#
//	#######
func TestAddCycles_KeepsComponents(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	for _, d := range []grid.Coord{{2, 1}, {1, 2}, {2, 3}} {
		require.NoError(t, g.Set(d, grid.Open))
	}
	before := len(g.ConnectedComponents())
	require.Equal(t, 3, before)

	var opened []grid.Coord
	n, err := generator.AddCycles(g, 10, generator.WithSeed(4),
		generator.WithOnOpen(func(c grid.Coord) { opened = append(opened, c) }))
	require.NoError(t, err)

	assert.Equal(t, 1, n, "only one door closes a cycle")
	assert.Equal(t, []grid.Coord{{3, 2}}, opened)
	assert.Equal(t, before, len(g.ConnectedComponents()), "components must not merge")
	assert.Equal(t, grid.Wall, g.At(grid.Coord{4, 1}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{4, 3}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{5, 2}))
}

// TestAddCycles_Budget checks that exactly k doors open when enough walls are
// eligible and that connectivity is preserved, over several seeds.
func TestAddCycles_Budget(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := generator.Generate([]int{5, 4}, generator.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, 19, g.OpenDoors())
		require.Equal(t, 12, g.ClosedDoors())

		n, err := generator.AddCycles(g, 3, generator.WithSeed(seed))
		require.NoError(t, err)
		assert.Equalf(t, 3, n, "seed %d", seed)
		assert.Equalf(t, 22, g.OpenDoors(), "seed %d", seed)
		assert.Truef(t, g.Connected(), "seed %d", seed)
	}
}

// TestAddCycles_Exhausts opens every remaining door and then reports zero.
func TestAddCycles_Exhausts(t *testing.T) {
	g, err := generator.Generate([]int{3, 3, 2}, generator.WithSeed(6))
	require.NoError(t, err)
	closed := g.ClosedDoors()

	n, err := generator.AddCycles(g, closed+10)
	require.NoError(t, err)
	assert.Equal(t, closed, n)
	assert.Zero(t, g.ClosedDoors())

	n, err = generator.AddCycles(g, 5)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestAddCycles_KeepsEndpoints checks that placed endpoints survive.
func TestAddCycles_KeepsEndpoints(t *testing.T) {
	g, err := generator.Generate([]int{4, 3}, generator.WithSeed(2))
	require.NoError(t, err)
	in, out := g.DefaultEndpoints()
	require.NoError(t, g.PlaceEndpoints(in, out))

	_, err = generator.AddCycles(g, 4, generator.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, grid.Entrance, g.At(in))
	assert.Equal(t, grid.Exit, g.At(out))
	assert.True(t, g.Connected())
}
