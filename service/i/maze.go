package i

import "github.com/beka-birhanu/vinom-maze/maze"

// MazeService creates, persists and restores mazes.
type MazeService interface {
	// Create generates a maze of the given size from seed.
	Create(width, height int, seed int64) (*maze.OrthogonalMaze, error)

	// Save persists m under name in the given format and returns the stored path.
	// An empty name is replaced by a random one.
	Save(m *maze.OrthogonalMaze, name, format string) (string, error)

	// Load restores a maze saved under name in the given format.
	Load(name, format string) (*maze.OrthogonalMaze, string, error)
}
