/*
Package generator carves perfect mazes into a maze.Grid.

Generators only use Grid.CarvePassage, so every grid they produce keeps
neighbouring cells consistent.
*/
package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Wilson generates uniform spanning-tree mazes with Wilson's algorithm:
// loop-erased random walks from unvisited cells until they hit the maze.
type Wilson struct {
	rand *rand.Rand
}

// NewWilson returns a generator whose output is fully determined by seed.
func NewWilson(seed int64) *Wilson {
	return &Wilson{rand: rand.New(rand.NewSource(seed))}
}

// Generate carves passages into g until every cell is connected to every
// other by exactly one path. g is expected to be fully walled.
func (w *Wilson) Generate(g *maze.Grid) error {
	total := g.Width() * g.Height()
	visited := make(map[maze.Position]struct{}, total)
	visited[w.randomCellPosition(g)] = struct{}{}

	for len(visited) < total {
		start := w.randomUnvisitedCellPosition(g, visited)
		path := w.randomWalk(g, start, visited)

		// Follow the loop-erased path from start and carve it.
		for cell := start; ; {
			dir := path[cell]
			if err := g.CarvePassage(cell, dir); err != nil {
				return err
			}
			visited[cell] = struct{}{}

			cell = cell.Step(dir)
			if _, done := visited[cell]; done {
				break
			}
		}
	}

	return nil
}

// randomCellPosition generates a random position within the grid.
func (w *Wilson) randomCellPosition(g *maze.Grid) maze.Position {
	return maze.Position{X: w.rand.Intn(g.Width()), Y: w.rand.Intn(g.Height())}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (w *Wilson) randomUnvisitedCellPosition(g *maze.Grid, visited map[maze.Position]struct{}) maze.Position {
	for {
		pos := w.randomCellPosition(g)
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the directions from pos that stay inside the grid.
func neighbors(g *maze.Grid, pos maze.Position) []maze.Cell {
	result := make([]maze.Cell, 0, len(maze.Directions))
	for _, dir := range maze.Directions {
		if g.InBounds(pos.Step(dir)) {
			result = append(result, dir)
		}
	}
	return result
}

// randomWalk walks from start until it reaches a visited cell and returns the
// last direction taken out of every cell it crossed. Overwriting the exit of
// revisited cells erases the loops.
func (w *Wilson) randomWalk(g *maze.Grid, start maze.Position, visited map[maze.Position]struct{}) map[maze.Position]maze.Cell {
	exits := make(map[maze.Position]maze.Cell)
	cell := start

	for {
		options := neighbors(g, cell)
		dir := options[w.rand.Intn(len(options))]
		exits[cell] = dir

		cell = cell.Step(dir)
		if _, included := visited[cell]; included {
			return exits
		}
	}
}
