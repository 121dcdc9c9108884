package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when a pattern name is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small layout of living cells relative to its top-left corner
type Pattern struct {
	Name  string
	Cells []Coord
}

var patterns = map[string]Pattern{
	"block": {Name: "block", Cells: []Coord{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	}},
	"blinker": {Name: "blinker", Cells: []Coord{
		{0, 0}, {0, 1}, {0, 2},
	}},
	"glider": {Name: "glider", Cells: []Coord{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}},
	"beehive": {Name: "beehive", Cells: []Coord{
		{0, 1}, {0, 2},
		{1, 0}, {1, 3},
		{2, 1}, {2, 2},
	}},
}

// LookupPattern returns the registered pattern with the given name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets the cells of p alive with its top-left corner at (row, column).
// Cells that fall outside the grid are dropped.
func (g *Grid) Place(p Pattern, row, column int) {
	for _, c := range p.Cells {
		if cell, ok := g.Get(row+c.Row, column+c.Column); ok {
			cell.SetAlive()
		}
	}
}
