package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/infrastruture/formatter"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 50
	defaultFormat       = formatter.YAMLFormat
)

var (
	ErrMazeTooLarge       = errors.New("maze dimensions exceed the configured maximum")
	ErrMazeNotFound       = errors.New("maze not found")
	ErrFormatNotLoadable  = errors.New("format cannot be loaded back into a maze")
	ErrStoreNotConfigured = errors.New("maze service requires a blob store")
)

var _ i.MazeService = &MazeService{}

// MazeService generates mazes and moves them in and out of a blob store.
type MazeService struct {
	store        i.BlobStore
	logger       *log.Logger
	maxDimension int
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Store        i.BlobStore
	Logger       *log.Logger // Discarded when nil
	MaxDimension int         // Largest accepted width or height; defaults to 50
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Store == nil {
		return nil, ErrStoreNotConfigured
	}

	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &MazeService{
		store:        c.Store,
		logger:       logger,
		maxDimension: maxDimension,
	}, nil
}

// Create generates a perfect maze of the given size with Wilson's algorithm.
func (s *MazeService) Create(width, height int, seed int64) (*maze.OrthogonalMaze, error) {
	if max(width, height) > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d, max %d", ErrMazeTooLarge, width, height, s.maxDimension)
	}

	m, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}

	if err := generator.NewWilson(seed).Generate(m.Grid()); err != nil {
		s.logger.Printf("%s[ERROR]%s generating %dx%d maze: %s", config.LogErrorColor, config.LogColorReset, width, height, err)
		return nil, err
	}

	s.logger.Printf("%s[INFO]%s generated %dx%d maze with seed %d", config.LogInfoColor, config.LogColorReset, width, height, seed)
	return m, nil
}

// Save persists m under name. An empty name gets a random UUID and names
// without an extension get the one of the format.
func (s *MazeService) Save(m *maze.OrthogonalMaze, name, format string) (string, error) {
	if format == "" {
		format = defaultFormat
	}

	f, err := formatter.ByName(format, s.store)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = uuid.NewString()
	}

	savedPath, err := m.Save(withExtension(name, format), f)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s saving maze: %s", config.LogErrorColor, config.LogColorReset, err)
		return "", err
	}

	s.logger.Printf("%s[INFO]%s maze saved: %s", config.LogInfoColor, config.LogColorReset, savedPath)
	return savedPath, nil
}

// Load restores the maze saved under name. It returns the maze and the path
// it was read from.
func (s *MazeService) Load(name, format string) (*maze.OrthogonalMaze, string, error) {
	if format == "" {
		format = defaultFormat
	}
	switch format {
	case formatter.YAMLFormat, formatter.ProtobufFormat:
	case formatter.TextFormat:
		return nil, "", fmt.Errorf("%w: %s", ErrFormatNotLoadable, format)
	default:
		return nil, "", fmt.Errorf("%w: %q", formatter.ErrUnknownFormat, format)
	}

	key := withExtension(name, format)
	data, err := s.store.Get(key)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: %s", ErrMazeNotFound, key)
		}
		s.logger.Printf("%s[ERROR]%s loading maze %s: %s", config.LogErrorColor, config.LogColorReset, key, err)
		return nil, "", err
	}

	grid, err := formatter.Decode(format, data)
	if err != nil {
		return nil, "", err
	}

	return maze.FromGrid(grid), key, nil
}

func withExtension(name, format string) string {
	if path.Ext(name) != "" {
		return name
	}
	return name + formatter.Extension(format)
}
