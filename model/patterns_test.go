package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
		if p.Name != name || len(p.Cells) == 0 {
			t.Fatalf("LookupPattern(%q) = %+v", name, p)
		}
	}
	if _, err := LookupPattern("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("error = %v, want ErrUnknownPattern", err)
	}
}

func TestPlaceDropsCellsOutsideGrid(t *testing.T) {
	g, err := NewEmptyGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	block, _ := LookupPattern("block")
	g.Place(block, 2, 2)
	if n := g.CountLiving(); n != 1 {
		t.Fatalf("living = %d, want 1", n)
	}
	if alive, _ := g.Alive(2, 2); !alive {
		t.Fatal("(2,2) should be alive")
	}
}

func TestBeehiveIsStillLife(t *testing.T) {
	g, err := NewEmptyGrid(5, 6)
	if err != nil {
		t.Fatal(err)
	}
	beehive, _ := LookupPattern("beehive")
	g.Place(beehive, 1, 1)
	w, err := NewWorldFromGrid(g)
	if err != nil {
		t.Fatal(err)
	}
	before := states(g)
	w.Step()
	assertLayout(t, states(g), before)
}

func TestGliderTravels(t *testing.T) {
	g, err := NewEmptyGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	glider, _ := LookupPattern("glider")
	g.Place(glider, 1, 1)
	w, err := NewWorldFromGrid(g)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		w.Step()
	}
	want, _ := NewEmptyGrid(10, 10)
	want.Place(glider, 2, 2)
	assertLayout(t, states(g), states(want))
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		generation int
		prefix     string
	}{
		{0, "Ouch!"},
		{1, "Not bad!"},
		{99, "Not bad!"},
		{100, "Wow!"},
		{999, "Wow!"},
		{1000, "Holy moly!"},
	}
	for _, tt := range tests {
		got := Verdict(tt.generation)
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Verdict(%d) = %q, want prefix %q", tt.generation, got, tt.prefix)
		}
	}
}
