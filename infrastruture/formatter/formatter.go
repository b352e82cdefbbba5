// Package formatter implements maze.Formatter for the text, YAML and protobuf
// wire representations of a grid.
package formatter

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Format names accepted by ByName.
const (
	TextFormat     = "text"
	YAMLFormat     = "yaml"
	ProtobufFormat = "pb"
)

var (
	// ErrUnknownFormat indicates a format name ByName does not know.
	ErrUnknownFormat = errors.New("formatter: unknown format")
	// ErrMalformed indicates serialized data that does not describe a grid.
	ErrMalformed = errors.New("formatter: malformed maze data")
)

// Document is serialized maze data waiting to be written to a store.
type Document struct {
	data  []byte
	err   error
	store i.BlobStore
}

var _ maze.Saveable = &Document{}

// Bytes returns the serialized data.
func (d *Document) Bytes() []byte {
	return d.data
}

// Save implements maze.Saveable.
func (d *Document) Save(path string) (string, error) {
	if d.err != nil {
		return "", &maze.SaveError{Path: path, Err: d.err}
	}
	if err := d.store.Put(path, d.data); err != nil {
		return "", &maze.SaveError{Path: path, Err: err}
	}
	return path, nil
}

// ByName returns the formatter registered under name, writing to store.
func ByName(name string, store i.BlobStore) (maze.Formatter, error) {
	switch name {
	case TextFormat:
		return &Text{Store: store}, nil
	case YAMLFormat:
		return &YAML{Store: store}, nil
	case ProtobufFormat:
		return &Protobuf{Store: store}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension conventionally used for a format.
func Extension(name string) string {
	switch name {
	case TextFormat:
		return ".txt"
	case YAMLFormat:
		return ".yaml"
	case ProtobufFormat:
		return ".pb"
	default:
		return ""
	}
}

// Decode parses data written by the YAML or protobuf formatter.
func Decode(name string, data []byte) (*maze.Grid, error) {
	switch name {
	case YAMLFormat:
		return DecodeYAML(data)
	case ProtobufFormat:
		return DecodeProtobuf(data)
	default:
		return nil, fmt.Errorf("%w: %q cannot be decoded", ErrUnknownFormat, name)
	}
}

// Text formats a grid as its ASCII rendering.
type Text struct {
	Store i.BlobStore
}

var _ maze.Formatter = &Text{}

// Format implements maze.Formatter.
func (t *Text) Format(g *maze.Grid) maze.Saveable {
	return &Document{data: []byte(g.String()), store: t.Store}
}

// rebuild creates a grid of the given size and copies cells into it in
// row-major order.
func rebuild(width, height int, cells []maze.Cell) (*maze.Grid, error) {
	// Checked before allocating so hostile dimensions cannot force a huge grid.
	if width > len(cells) || height > len(cells) || len(cells) != width*height {
		return nil, fmt.Errorf("%w: %dx%d grid with %d cells", ErrMalformed, width, height, len(cells))
	}
	grid, err := maze.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	for idx, c := range cells {
		p := maze.Position{X: idx % width, Y: idx / width}
		for _, d := range maze.Directions {
			if !c.Contains(d) {
				_ = grid.RemoveWall(p, d)
			}
		}
	}
	return grid, nil
}
