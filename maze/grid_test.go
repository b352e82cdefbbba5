package maze

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(g *Grid) []Cell {
	return slices.Collect(g.Cells())
}

func TestCarvePassage(t *testing.T) {
	cases := []struct {
		name     string
		pos      Position
		dir      Cell
		neighbor Position
	}{
		{"North", Position{1, 1}, North, Position{1, 0}},
		{"South", Position{1, 1}, South, Position{1, 2}},
		{"East", Position{1, 1}, East, Position{2, 1}},
		{"West", Position{1, 1}, West, Position{0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := NewGrid(3, 3)
			require.NoError(t, err)

			require.NoError(t, grid.CarvePassage(tc.pos, tc.dir))

			cell, _ := grid.Cell(tc.pos)
			assert.False(t, cell.Contains(tc.dir))
			assert.Equal(t, 3, cell.WallCount())

			neighbor, _ := grid.Cell(tc.neighbor)
			assert.False(t, neighbor.Contains(tc.dir.Opposite()))
			assert.Equal(t, 3, neighbor.WallCount())

			for p, c := range grid.All() {
				if p == tc.pos || p == tc.neighbor {
					continue
				}
				assert.Equal(t, Walled, c, "cell %v changed", p)
			}
		})
	}
}

func TestCarvePassageBoundary(t *testing.T) {
	grid, err := NewGrid(2, 2)
	require.NoError(t, err)
	before := snapshot(grid)

	require.NoError(t, grid.CarvePassage(Position{0, 0}, North))

	after := snapshot(grid)
	assert.Equal(t, Walled&^North, after[0])
	assert.Equal(t, before[1:], after[1:])

	m := FromGrid(grid)
	assert.True(t, m.IsValid())
}

func TestCarvePassageErrors(t *testing.T) {
	cases := []struct {
		name string
		pos  Position
		dir  Cell
		err  error
	}{
		{"NegativeX", Position{-1, 0}, East, ErrOutOfBounds},
		{"NegativeY", Position{0, -1}, South, ErrOutOfBounds},
		{"XTooLarge", Position{3, 0}, West, ErrOutOfBounds},
		{"YTooLarge", Position{0, 2}, North, ErrOutOfBounds},
		{"NoDirection", Position{0, 0}, 0, ErrInvalidDirection},
		{"TwoDirections", Position{0, 0}, North | East, ErrInvalidDirection},
		{"UnknownBit", Position{0, 0}, 1 << 5, ErrInvalidDirection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := NewGrid(3, 2)
			require.NoError(t, err)
			before := snapshot(grid)

			err = grid.CarvePassage(tc.pos, tc.dir)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, before, snapshot(grid))
		})
	}
}

func TestAddWallLeavesNeighbor(t *testing.T) {
	grid, err := NewGrid(2, 1)
	require.NoError(t, err)
	require.NoError(t, grid.CarvePassage(Position{0, 0}, East))

	require.NoError(t, grid.AddWall(Position{0, 0}, East))

	left, _ := grid.Cell(Position{0, 0})
	right, _ := grid.Cell(Position{1, 0})
	assert.True(t, left.Contains(East))
	assert.False(t, right.Contains(West))

	assert.ErrorIs(t, grid.AddWall(Position{2, 0}, East), ErrOutOfBounds)
}

func TestCellsOrder(t *testing.T) {
	grid, err := NewGrid(3, 2)
	require.NoError(t, err)

	var got []Position
	for p := range grid.All() {
		got = append(got, p)
	}
	assert.Equal(t, []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, got)

	// Restartable and stoppable.
	assert.Len(t, snapshot(grid), 6)
	assert.Len(t, snapshot(grid), 6)
	for range grid.Cells() {
		break
	}
}

func TestCellFlags(t *testing.T) {
	c := Walled
	assert.True(t, c.Contains(North|West))

	c.Remove(North)
	assert.False(t, c.Contains(North))
	assert.False(t, c.Contains(North|West))
	assert.Equal(t, "S|E|W", c.String())

	c.Insert(North)
	assert.Equal(t, Walled, c)

	c.Remove(Walled)
	assert.Equal(t, 0, c.WallCount())
	assert.Equal(t, "-", c.String())

	for _, d := range Directions {
		assert.True(t, d.IsDirection())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, Position{1, 1}, Position{1, 1}.Step(d).Step(d.Opposite()))
	}
	assert.False(t, Walled.IsDirection())
}

func TestRenderSingleCell(t *testing.T) {
	grid, err := NewGrid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, " _ \n|_|\n", grid.String())

	require.NoError(t, grid.CarvePassage(Position{0, 0}, West))
	require.NoError(t, grid.CarvePassage(Position{0, 0}, East))
	assert.Equal(t, " _ \n _ \n", grid.String())
}
