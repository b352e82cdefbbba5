package formatter

import (
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the protobuf maze message:
//
//	message Maze {
//	  uint32 width  = 1;
//	  uint32 height = 2;
//	  bytes  cells  = 3; // one byte of wall flags per cell, row-major
//	}
const (
	widthField  protowire.Number = 1
	heightField protowire.Number = 2
	cellsField  protowire.Number = 3
)

// Protobuf formats a grid in protobuf wire format.
type Protobuf struct {
	Store i.BlobStore
}

var _ maze.Formatter = &Protobuf{}

// Format implements maze.Formatter.
func (p *Protobuf) Format(g *maze.Grid) maze.Saveable {
	cells := make([]byte, 0, g.Width()*g.Height())
	for c := range g.Cells() {
		cells = append(cells, byte(c))
	}

	var b []byte
	b = protowire.AppendTag(b, widthField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Width()))
	b = protowire.AppendTag(b, heightField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Height()))
	b = protowire.AppendTag(b, cellsField, protowire.BytesType)
	b = protowire.AppendBytes(b, cells)

	return &Document{data: b, store: p.Store}
}

// DecodeProtobuf parses a message produced by the protobuf formatter.
// Unknown fields are skipped.
func DecodeProtobuf(b []byte) (*maze.Grid, error) {
	var (
		width, height uint64
		raw           []byte
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == widthField && typ == protowire.VarintType:
			width, n = protowire.ConsumeVarint(b)
		case num == heightField && typ == protowire.VarintType:
			height, n = protowire.ConsumeVarint(b)
		case num == cellsField && typ == protowire.BytesType:
			raw, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
	}

	if width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrMalformed, width, height)
	}

	cells := make([]maze.Cell, len(raw))
	for idx, c := range raw {
		cells[idx] = maze.Cell(c) & maze.Walled
	}
	return rebuild(int(width), int(height), cells)
}
