package maze

import (
	"math/bits"
	"strings"
)

// Cell represents a single cell in a maze grid as a set of wall flags.
// A set flag means the wall on that side is present.
//
// The single-flag values North, South, East and West also serve as directions
// when carving passages.
type Cell uint8

const (
	North Cell = 1 << iota // North wall, or the direction towards y-1.
	South                  // South wall, or the direction towards y+1.
	East                   // East wall, or the direction towards x+1.
	West                   // West wall, or the direction towards x-1.

	// Walled is the initial state of every cell: all four walls present.
	Walled = North | South | East | West
)

// Directions lists the four cardinal directions in a fixed order.
var Directions = [4]Cell{North, South, East, West}

// Contains reports whether every wall in w is present on the cell.
func (c Cell) Contains(w Cell) bool {
	return c&w == w
}

// Remove clears the walls in w.
func (c *Cell) Remove(w Cell) {
	*c &^= w
}

// Insert sets the walls in w.
func (c *Cell) Insert(w Cell) {
	*c |= w & Walled
}

// WallCount returns the number of walls present on the cell.
func (c Cell) WallCount() int {
	return bits.OnesCount8(uint8(c & Walled))
}

// IsDirection reports whether c is exactly one of North, South, East or West.
func (c Cell) IsDirection() bool {
	return c != 0 && c&Walled == c && c&(c-1) == 0
}

// Opposite returns the direction facing c. It returns 0 for values that are
// not a single direction.
func (c Cell) Opposite() Cell {
	switch c {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return 0
	}
}

// String renders the present walls, e.g. "N|E", or "-" for an open cell.
func (c Cell) String() string {
	names := make([]string, 0, 4)
	for _, d := range Directions {
		if c.Contains(d) {
			names = append(names, d.letter())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

func (c Cell) letter() string {
	switch c {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Position is the (column, row) address of a cell. The origin is the top-left
// cell.
type Position struct {
	X int // Column index
	Y int // Row index
}

// Step returns the position adjacent to p in direction d. Values of d that are
// not a single direction leave p unchanged.
func (p Position) Step(d Cell) Position {
	switch d {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	default:
		return p
	}
}
