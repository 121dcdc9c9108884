package model

import (
	"crypto/md5"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrNilSource is returned when a seeded grid is requested without a random source
	ErrNilSource = errors.New("random source is nil")
)

// neighborOffsets are the 8 surrounding (row, column) offsets
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Coord addresses a cell by row and column
type Coord struct {
	Row    int
	Column int
}

// Grid is a fixed-size bounded board of cells with a precomputed adjacency table
type Grid struct {
	rows    int
	columns int
	cells   []Cell    // row-major
	adj     [][]Coord // neighbor coordinates per cell, same indexing as cells
}

// NewGrid creates a grid where every cell is independently alive with
// probability 1/3, drawn from src, and builds the adjacency table
func NewGrid(rows, columns int, src RandomSource) (*Grid, error) {
	if src == nil {
		return nil, errors.Wrap(ErrNilSource, "[NewGrid]")
	}
	g, err := newGrid(rows, columns)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	for i := range g.cells {
		if src.IntN(3) == 0 {
			g.cells[i].SetAlive()
		}
	}
	g.connect()
	return g, nil
}

// NewEmptyGrid creates a grid where every cell starts dead
func NewEmptyGrid(rows, columns int) (*Grid, error) {
	g, err := newGrid(rows, columns)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEmptyGrid]")
	}
	g.connect()
	return g, nil
}

func newGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "rows=%d columns=%d", rows, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}, nil
}

// connect builds the adjacency table once; it is never rebuilt
func (g *Grid) connect() {
	g.adj = make([][]Coord, len(g.cells))
	for row := range g.rows {
		for column := range g.columns {
			neighbors := make([]Coord, 0, len(neighborOffsets))
			for _, off := range neighborOffsets {
				r, c := row+off[0], column+off[1]
				if _, ok := g.Get(r, c); !ok {
					continue
				}
				if r == row && c == column {
					continue
				}
				neighbors = append(neighbors, Coord{Row: r, Column: c})
			}
			g.adj[g.index(row, column)] = neighbors
		}
	}
}

func (g *Grid) index(row, column int) int {
	return row*g.columns + column
}

func (g *Grid) inBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns of the grid
func (g *Grid) Columns() int {
	return g.columns
}

// Get returns the cell at (row, column), or false when either coordinate is out of range
func (g *Grid) Get(row, column int) (*Cell, bool) {
	if !g.inBounds(row, column) {
		return nil, false
	}
	return &g.cells[g.index(row, column)], true
}

// Alive reports the state of the cell at (row, column); ok is false when out of range
func (g *Grid) Alive(row, column int) (alive bool, ok bool) {
	cell, ok := g.Get(row, column)
	if !ok {
		return false, false
	}
	return cell.IsAlive(), true
}

// Neighbors returns the in-bounds neighbor coordinates of (row, column).
// The returned slice is shared with the grid and must not be modified.
func (g *Grid) Neighbors(row, column int) []Coord {
	if !g.inBounds(row, column) {
		return nil
	}
	return g.adj[g.index(row, column)]
}

// AllCoordinates yields every coordinate of the grid once, in row-major order
func (g *Grid) AllCoordinates() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for row := range g.rows {
			for column := range g.columns {
				if !yield(Coord{Row: row, Column: column}) {
					return
				}
			}
		}
	}
}

// CountLiving returns the total number of living cells
func (g *Grid) CountLiving() (count int) {
	for i := range g.cells {
		if g.cells[i].IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current alive/dead layout
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i := range g.cells {
		if g.cells[i].IsAlive() {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Clear sets every cell dead
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].SetDead()
	}
}
