package formatter

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"gopkg.in/yaml.v3"
)

// yamlMaze is the YAML layout of a grid. Each row lists its cells left to
// right, separated by spaces; a cell is the letters of its walls in NSEW
// order, or "-" when it has none.
type yamlMaze struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Rows   []string `yaml:"rows"`
}

// YAML formats a grid as a YAML document.
type YAML struct {
	Store i.BlobStore
}

var _ maze.Formatter = &YAML{}

// Format implements maze.Formatter.
func (y *YAML) Format(g *maze.Grid) maze.Saveable {
	doc := yamlMaze{
		Width:  g.Width(),
		Height: g.Height(),
		Rows:   make([]string, 0, g.Height()),
	}

	row := make([]string, 0, g.Width())
	for p, c := range g.All() {
		row = append(row, wallLetters(c))
		if p.X == g.Width()-1 {
			doc.Rows = append(doc.Rows, strings.Join(row, " "))
			row = row[:0]
		}
	}

	data, err := yaml.Marshal(&doc)
	return &Document{data: data, err: err, store: y.Store}
}

// DecodeYAML parses a document produced by the YAML formatter.
func DecodeYAML(data []byte) (*maze.Grid, error) {
	var doc yamlMaze
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, maze.ErrInvalidDimensions)
	}
	if len(doc.Rows) != doc.Height {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, doc.Height, len(doc.Rows))
	}

	// A row of n cells takes at least 2n-1 bytes.
	if n := len(doc.Rows[0]); doc.Width > (n+1)/2 {
		return nil, fmt.Errorf("%w: width %d does not fit row of %d bytes", ErrMalformed, doc.Width, n)
	}

	var cells []maze.Cell
	for y, row := range doc.Rows {
		fields := strings.Fields(row)
		if len(fields) != doc.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, y, len(fields), doc.Width)
		}
		for _, f := range fields {
			c, err := parseWallLetters(f)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
	}

	return rebuild(doc.Width, doc.Height, cells)
}

func wallLetters(c maze.Cell) string {
	var sb strings.Builder
	for _, d := range maze.Directions {
		if c.Contains(d) {
			sb.WriteByte(directionLetter(d))
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func parseWallLetters(s string) (maze.Cell, error) {
	var c maze.Cell
	if s == "-" {
		return c, nil
	}
	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case 'N':
			c.Insert(maze.North)
		case 'S':
			c.Insert(maze.South)
		case 'E':
			c.Insert(maze.East)
		case 'W':
			c.Insert(maze.West)
		default:
			return 0, fmt.Errorf("%w: unexpected wall %q", ErrMalformed, s[idx])
		}
	}
	return c, nil
}

func directionLetter(d maze.Cell) byte {
	switch d {
	case maze.North:
		return 'N'
	case maze.South:
		return 'S'
	case maze.East:
		return 'E'
	default:
		return 'W'
	}
}
