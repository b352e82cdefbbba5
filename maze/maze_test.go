package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateMaze builds the 4x4 fixture used by the rendering tests.
func generateMaze(t *testing.T) *Grid {
	t.Helper()

	grid, err := NewGrid(4, 4)
	require.NoError(t, err)

	carves := []struct {
		pos Position
		dir Cell
	}{
		{Position{0, 0}, South},
		{Position{0, 1}, East},
		{Position{0, 2}, East},
		{Position{0, 2}, South},
		{Position{0, 3}, East},

		{Position{1, 0}, East},
		{Position{1, 1}, East},
		{Position{1, 1}, South},
		{Position{1, 2}, East},
		{Position{1, 3}, East},

		{Position{2, 0}, East},
		{Position{2, 2}, East},
		{Position{2, 3}, East},

		{Position{3, 1}, North},
		{Position{3, 1}, South},
	}
	for _, c := range carves {
		require.NoError(t, grid.CarvePassage(c.pos, c.dir))
	}

	return grid
}

func TestOrthogonalMaze(t *testing.T) {
	t.Run("New maze is valid and fully walled", func(t *testing.T) {
		m, err := New(3, 5)
		require.NoError(t, err)

		assert.True(t, m.IsValid())
		for cell := range m.Grid().Cells() {
			assert.Equal(t, 4, cell.WallCount())
		}
	})

	t.Run("New rejects empty dimensions", func(t *testing.T) {
		_, err := New(0, 4)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Display", func(t *testing.T) {
		expected := " _______ \n" +
			"| |___  |\n" +
			"|_   _| |\n" +
			"|  _____|\n" +
			"|_______|\n"

		m := FromGrid(generateMaze(t))

		assert.Equal(t, expected, m.String())
		assert.Equal(t, m.String(), m.String())
	})

	t.Run("Carved maze is valid", func(t *testing.T) {
		m := FromGrid(generateMaze(t))
		assert.True(t, m.IsValid())
	})

	t.Run("Cell without walls is invalid", func(t *testing.T) {
		m := FromGrid(generateMaze(t))
		grid := m.Grid()

		// (1, 1) is open to the south, east and west; close the remaining side.
		require.NoError(t, grid.RemoveWall(Position{1, 1}, North))
		assert.False(t, m.IsValid())

		require.NoError(t, grid.AddWall(Position{1, 1}, North))
		assert.True(t, m.IsValid())
	})

	t.Run("Open region stays valid while every cell keeps a wall", func(t *testing.T) {
		m, err := New(2, 1)
		require.NoError(t, err)
		require.NoError(t, m.Grid().CarvePassage(Position{0, 0}, East))
		require.NoError(t, m.Grid().CarvePassage(Position{0, 0}, North))
		require.NoError(t, m.Grid().CarvePassage(Position{0, 0}, South))

		assert.True(t, m.IsValid())
	})
}

type stubSaveable struct {
	err error
}

func (s stubSaveable) Save(path string) (string, error) {
	if s.err != nil {
		return "", &SaveError{Path: path, Err: s.err}
	}
	return path, nil
}

type stubFormatter struct {
	got  *Grid
	data stubSaveable
}

func (f *stubFormatter) Format(g *Grid) Saveable {
	f.got = g
	return f.data
}

func TestOrthogonalMazeSave(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	t.Run("returns path", func(t *testing.T) {
		f := &stubFormatter{}
		path, err := m.Save("mazes/a.txt", f)
		require.NoError(t, err)
		assert.Equal(t, "mazes/a.txt", path)
		assert.Same(t, m.Grid(), f.got)
	})

	t.Run("propagates save error", func(t *testing.T) {
		cause := assert.AnError
		_, err := m.Save("mazes/b.txt", &stubFormatter{data: stubSaveable{err: cause}})

		var saveErr *SaveError
		require.ErrorAs(t, err, &saveErr)
		assert.Equal(t, "mazes/b.txt", saveErr.Path)
		assert.ErrorIs(t, err, cause)
	})
}
