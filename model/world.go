package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNilGrid is returned when a world is built around a missing grid
var ErrNilGrid = errors.New("grid is nil")

// World owns a Grid and the generation counter, and is the only entry point
// that mutates cells
type World struct {
	grid       *Grid
	generation int

	// scratch holds the neighbor states of one cell during phase 1
	scratch []bool
}

// NewWorld creates a world over a freshly seeded grid at generation 0
func NewWorld(rows, columns int, src RandomSource) (*World, error) {
	grid, err := NewGrid(rows, columns, src)
	if err != nil {
		return nil, errors.Wrap(err, "[NewWorld]")
	}
	return NewWorldFromGrid(grid)
}

// NewWorldFromGrid creates a world at generation 0 that takes ownership of grid
func NewWorldFromGrid(grid *Grid) (*World, error) {
	if grid == nil {
		return nil, errors.Wrap(ErrNilGrid, "[NewWorldFromGrid]")
	}
	return &World{
		grid:    grid,
		scratch: make([]bool, 0, len(neighborOffsets)),
	}, nil
}

// Grid returns the owned grid for read access by renderers
func (w *World) Grid() *Grid {
	return w.grid
}

/*
Step advances the world by exactly one generation in two phases.

Phase 1 recomputes the living-neighbor count of every cell from the
current states of its neighbors. Phase 2 applies the transition rule to
every cell. No cell changes state before every count has been taken, so
the next generation is computed from a frozen snapshot of the current one.
Merging the two loops would let updated cells leak into their neighbors' counts.
*/
func (w *World) Step() {
	for coord := range w.grid.AllCoordinates() {
		w.scratch = w.scratch[:0]
		for _, n := range w.grid.Neighbors(coord.Row, coord.Column) {
			if neighbor, ok := w.grid.Get(n.Row, n.Column); ok {
				w.scratch = append(w.scratch, neighbor.IsAlive())
			}
		}
		cell, _ := w.grid.Get(coord.Row, coord.Column)
		cell.RecomputeLivingNeighborCount(w.scratch)
	}

	for coord := range w.grid.AllCoordinates() {
		cell, _ := w.grid.Get(coord.Row, coord.Column)
		cell.ApplyTransition()
	}

	w.generation++
}

// Toggle flips the cell at (row, column); out-of-range coordinates are ignored
func (w *World) Toggle(row, column int) {
	if cell, ok := w.grid.Get(row, column); ok {
		cell.Toggle()
	}
}

// Generation returns the number of steps taken so far
func (w *World) Generation() int {
	return w.generation
}

// LivingCount returns the number of living cells right now
func (w *World) LivingCount() int {
	return w.grid.CountLiving()
}

// Summary formats the generation and living count for display
func (w *World) Summary() string {
	return fmt.Sprintf("Generation: %d, Living cells: %d", w.generation, w.LivingCount())
}
