/*
Package maze provides the data model for rectangular orthogonal mazes.

A maze is a Grid of Cell values, each a set of wall flags. Passages are carved
with Grid.CarvePassage, which keeps adjacent cells consistent. The grid renders
itself as ASCII art through its String method, and OrthogonalMaze hands it to a
Formatter when it has to be persisted.

Generation algorithms live outside this package and only use CarvePassage.
*/
package maze

// OrthogonalMaze is a maze of square cells. It exclusively owns its grid.
type OrthogonalMaze struct {
	grid *Grid
}

// New returns a fully walled maze of the given dimensions.
func New(width, height int) (*OrthogonalMaze, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &OrthogonalMaze{grid: grid}, nil
}

// FromGrid wraps an existing grid, for example one decoded from storage.
// The maze takes ownership of g.
func FromGrid(g *Grid) *OrthogonalMaze {
	return &OrthogonalMaze{grid: g}
}

// Grid returns the maze's grid for mutation by carving algorithms.
func (m *OrthogonalMaze) Grid() *Grid {
	return m.grid
}

// IsValid reports whether every cell keeps at least one wall.
//
// This is a local check only: disconnected or unreachable regions are still
// valid.
func (m *OrthogonalMaze) IsValid() bool {
	for cell := range m.grid.Cells() {
		if cell.WallCount() == 0 {
			return false
		}
	}
	return true
}

// Save formats the grid with f and persists the result at path.
// It returns the path written on success; errors from the Saveable are
// returned unchanged.
func (m *OrthogonalMaze) Save(path string, f Formatter) (string, error) {
	data := f.Format(m.grid)
	return data.Save(path)
}

// String renders the maze as ASCII art.
func (m *OrthogonalMaze) String() string {
	return m.grid.String()
}
