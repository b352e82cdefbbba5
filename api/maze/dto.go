// Package mazeapi exposes maze creation, rendering and retrieval over HTTP.
package mazeapi

// CreateRequest represents a request to generate and store a new maze.
type CreateRequest struct {
	Width  int    `json:"width" binding:"required,min=1"`
	Height int    `json:"height" binding:"required,min=1"`
	Seed   int64  `json:"seed"`
	Format string `json:"format"`
	Name   string `json:"name"`
}

// RenderQuery holds the query parameters of a render request.
type RenderQuery struct {
	Width  int   `form:"width" binding:"required,min=1"`
	Height int   `form:"height" binding:"required,min=1"`
	Seed   int64 `form:"seed"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	Path  string `json:"path"`
	ASCII string `json:"ascii"`
	Valid bool   `json:"valid"`
}
