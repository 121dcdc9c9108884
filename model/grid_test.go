package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

// cycleSource returns its values in order, wrapping around at the end
type cycleSource struct {
	values []int
	next   int
}

func (s *cycleSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		rows, columns int
	}{
		{0, 3}, {3, 0}, {0, 0}, {-1, 5}, {5, -2},
	}
	for _, tt := range tests {
		g, err := NewGrid(tt.rows, tt.columns, NewSeededSource(1))
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", tt.rows, tt.columns, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid alongside an error", tt.rows, tt.columns)
		}
		if _, err := NewEmptyGrid(tt.rows, tt.columns); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewEmptyGrid(%d, %d) error = %v, want ErrInvalidDimensions", tt.rows, tt.columns, err)
		}
	}
}

func TestNewGridRejectsNilSource(t *testing.T) {
	if _, err := NewGrid(3, 3, nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("error = %v, want ErrNilSource", err)
	}
}

func TestNewGridSeedsAliveOnZeroDraw(t *testing.T) {
	src := &cycleSource{values: []int{0, 1, 2}}
	g, err := NewGrid(3, 4, src)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if src.next != 12 {
		t.Fatalf("source drawn %d times, want one draw per cell (12)", src.next)
	}
	i := 0
	for coord := range g.AllCoordinates() {
		alive, _ := g.Alive(coord.Row, coord.Column)
		if want := i%3 == 0; alive != want {
			t.Errorf("cell %v alive=%v, want %v", coord, alive, want)
		}
		i++
	}
}

func TestNewGridSeedingIsReproducible(t *testing.T) {
	a, err := NewGrid(40, 30, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGrid(40, 30, NewSeededSource(7))
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("grids seeded with the same seed differ")
	}
}

func TestNewGridLivingFraction(t *testing.T) {
	g, err := NewGrid(100, 100, NewSeededSource(42))
	if err != nil {
		t.Fatal(err)
	}
	fraction := float64(g.CountLiving()) / 10000
	if math.Abs(fraction-1.0/3.0) > 0.02 {
		t.Fatalf("living fraction = %.4f, want within 0.02 of 1/3", fraction)
	}
}

func TestAdjacencySizes(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {3, 3}, {4, 7}, {10, 10}} {
		rows, columns := dims[0], dims[1]
		g, err := NewEmptyGrid(rows, columns)
		if err != nil {
			t.Fatal(err)
		}
		for coord := range g.AllCoordinates() {
			onRowEdge := coord.Row == 0 || coord.Row == rows-1
			onColumnEdge := coord.Column == 0 || coord.Column == columns-1
			want := 8
			switch {
			case onRowEdge && onColumnEdge:
				want = 3
			case onRowEdge || onColumnEdge:
				want = 5
			}
			if got := len(g.Neighbors(coord.Row, coord.Column)); got != want {
				t.Errorf("%dx%d: %v has %d neighbors, want %d", rows, columns, coord, got, want)
			}
		}
	}
}

func TestAdjacencyIsSymmetricAndExcludesSelf(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 4}, {6, 6}} {
		g, err := NewEmptyGrid(dims[0], dims[1])
		if err != nil {
			t.Fatal(err)
		}
		for a := range g.AllCoordinates() {
			for _, b := range g.Neighbors(a.Row, a.Column) {
				if a == b {
					t.Errorf("%v lists itself as a neighbor", a)
				}
				if _, ok := g.Get(b.Row, b.Column); !ok {
					t.Errorf("%v has out-of-range neighbor %v", a, b)
				}
				found := false
				for _, back := range g.Neighbors(b.Row, b.Column) {
					if back == a {
						found = true
					}
				}
				if !found {
					t.Errorf("%v is adjacent to %v but not the reverse", b, a)
				}
			}
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	g, err := NewEmptyGrid(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}, {-5, 100}} {
		if cell, ok := g.Get(c.Row, c.Column); ok || cell != nil {
			t.Errorf("Get(%d, %d) = %v, %v; want nil, false", c.Row, c.Column, cell, ok)
		}
		if _, ok := g.Alive(c.Row, c.Column); ok {
			t.Errorf("Alive(%d, %d) reported in range", c.Row, c.Column)
		}
		if n := g.Neighbors(c.Row, c.Column); n != nil {
			t.Errorf("Neighbors(%d, %d) = %v, want nil", c.Row, c.Column, n)
		}
	}
	if _, ok := g.Get(2, 3); !ok {
		t.Error("Get(2, 3) should be in range")
	}
}

func TestAllCoordinates(t *testing.T) {
	g, err := NewEmptyGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for pass := 0; pass < 2; pass++ {
		var got []Coord
		for c := range g.AllCoordinates() {
			got = append(got, c)
		}
		if len(got) != len(want) {
			t.Fatalf("pass %d: got %d coordinates, want %d", pass, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pass %d: coordinate %d = %v, want %v", pass, i, got[i], want[i])
			}
		}
	}

	seen := 0
	for range g.AllCoordinates() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("early break visited %d coordinates", seen)
	}
}

func TestCountLivingReflectsCurrentState(t *testing.T) {
	g, err := NewEmptyGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if n := g.CountLiving(); n != 0 {
		t.Fatalf("empty grid has %d living cells", n)
	}
	cell, _ := g.Get(1, 2)
	cell.SetAlive()
	if n := g.CountLiving(); n != 1 {
		t.Fatalf("CountLiving = %d, want 1", n)
	}
	cell.SetDead()
	if n := g.CountLiving(); n != 0 {
		t.Fatalf("CountLiving = %d, want 0", n)
	}
}

func TestHashTracksLayout(t *testing.T) {
	g, err := NewEmptyGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	empty := g.Hash()
	cell, _ := g.Get(0, 0)
	cell.SetAlive()
	if g.Hash() == empty {
		t.Fatal("hash did not change with the layout")
	}
	g.Clear()
	if g.Hash() != empty {
		t.Fatal("cleared grid should hash like an empty one")
	}
}
