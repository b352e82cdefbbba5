package maze

// Formatter converts a grid into a serialized representation.
// Implementations must accept any grid produced by NewGrid, whatever its walls.
type Formatter interface {
	Format(g *Grid) Saveable
}

// Saveable is serialized maze data that knows how to persist itself.
type Saveable interface {
	// Save writes the data to path and returns the path on success.
	// Failures should be reported as *SaveError.
	Save(path string) (string, error)
}
