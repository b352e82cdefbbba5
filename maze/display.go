package maze

import "strings"

const (
	horizontalWall = '_'
	verticalWall   = '|'
	noWall         = ' '
)

// render draws g with underscores for horizontal walls and bars for vertical
// ones. The output has height+1 lines, each terminated by a newline.
//
// Every row line carries the south walls of its cells, so the last row closes
// the picture and no separate bottom border is drawn.
func render(g *Grid) string {
	var sb strings.Builder
	sb.Grow((2*g.width + 2) * (g.height + 1))

	// Top boundary
	sb.WriteRune(noWall)
	sb.WriteString(strings.Repeat(string(horizontalWall), 2*g.width-1))
	sb.WriteRune(noWall)
	sb.WriteByte('\n')

	for y := 0; y < g.height; y++ {
		if g.at(0, y).Contains(West) {
			sb.WriteRune(verticalWall)
		} else {
			sb.WriteRune(noWall)
		}

		for x := 0; x < g.width; x++ {
			cell := g.at(x, y)
			sb.WriteRune(southChar(cell))
			sb.WriteRune(eastChar(g, x, y))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func southChar(c Cell) rune {
	if c.Contains(South) {
		return horizontalWall
	}
	return noWall
}

// eastChar draws the separator between (x, y) and its east neighbour. Without
// an east wall the floor continues only if both cells have a south wall.
func eastChar(g *Grid, x, y int) rune {
	cell := g.at(x, y)
	if cell.Contains(East) {
		return verticalWall
	}
	if x+1 >= g.width {
		return noWall
	}
	if cell.Contains(South) && g.at(x+1, y).Contains(South) {
		return horizontalWall
	}
	return noWall
}
