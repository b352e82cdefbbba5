package maze

import (
	"fmt"
	"iter"
)

// Grid is a rectangular arrangement of cells addressed by (column, row).
// Cells are stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid with every wall present.
// It returns ErrInvalidDimensions if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Walled
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cell returns the cell at p.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return 0, g.outOfBounds(p)
	}
	return g.cells[g.index(p)], nil
}

// Cells yields every cell row by row, left to right, starting at the top-left.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// All yields every cell together with its position, in the same order as Cells.
func (g *Grid) All() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for i, c := range g.cells {
			if !yield(Position{X: i % g.width, Y: i / g.width}, c) {
				return
			}
		}
	}
}

// CarvePassage removes the wall on side d of the cell at p, and the facing
// wall of the neighbour in that direction so both cells agree.
//
// Carving towards the outside of the grid only clears the wall of p; the
// result is an opening on the boundary.
//
// Nothing is mutated when an error is returned.
func (g *Grid) CarvePassage(p Position, d Cell) error {
	if err := g.check(p, d); err != nil {
		return err
	}

	g.cells[g.index(p)].Remove(d)

	neighbor := p.Step(d)
	if g.InBounds(neighbor) {
		g.cells[g.index(neighbor)].Remove(d.Opposite())
	}

	return nil
}

// AddWall sets the wall on side d of the cell at p. The neighbour is left
// untouched, so the two cells may disagree afterwards.
func (g *Grid) AddWall(p Position, d Cell) error {
	if err := g.check(p, d); err != nil {
		return err
	}
	g.cells[g.index(p)].Insert(d)
	return nil
}

// RemoveWall clears the wall on side d of the cell at p without updating the
// neighbour.
func (g *Grid) RemoveWall(p Position, d Cell) error {
	if err := g.check(p, d); err != nil {
		return err
	}
	g.cells[g.index(p)].Remove(d)
	return nil
}

// String renders the grid as ASCII art.
func (g *Grid) String() string {
	return render(g)
}

func (g *Grid) check(p Position, d Cell) error {
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	if !d.IsDirection() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	return nil
}

func (g *Grid) outOfBounds(p Position) error {
	return fmt.Errorf("%w: (%d, %d) not in %dx%d grid", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
}

// index maps p to its row-major offset: y*width + x.
func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// at returns the cell at (x, y) without bounds checking.
func (g *Grid) at(x, y int) Cell {
	return g.cells[y*g.width+x]
}
