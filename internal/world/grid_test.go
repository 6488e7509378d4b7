package world

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/samdwyer/battleship/internal/coord"
)

func mustParse(t *testing.T, s string) coord.Coord {
	t.Helper()
	c, err := coord.Parse(s, DefaultSize)
	if err != nil {
		t.Fatalf("coord.Parse(%q) returned error: %v", s, err)
	}
	return c
}

func encodeAll(line []coord.Coord) []string {
	out := make([]string, len(line))
	for i, c := range line {
		out[i] = c.String()
	}
	return out
}

func placeAt(t *testing.T, g *Grid, name string, length int, start string, o Orientation) *Vessel {
	t.Helper()
	line, err := g.PlanPlacement(mustParse(t, start), length, o)
	if err != nil {
		t.Fatalf("PlanPlacement(%s, %d, %s) returned error: %v", start, length, o, err)
	}
	v := NewVessel(name, length, o, line)
	if err := g.Place(v); err != nil {
		t.Fatalf("Place(%s) returned error: %v", name, err)
	}
	return v
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(DefaultSize)
	for row := 0; row < DefaultSize; row++ {
		for col := 0; col < DefaultSize; col++ {
			c := coord.New(row, col)
			if g.CellAt(c).HasVessel() {
				t.Errorf("new grid has a vessel at %s", c)
			}
			if g.StateAt(c) != CellUnknown {
				t.Errorf("StateAt(%s) = %v, want unknown", c, g.StateAt(c))
			}
		}
	}
	if len(g.Fleet()) != 0 {
		t.Errorf("new grid fleet length = %d, want 0", len(g.Fleet()))
	}
	if g.AllSunk() {
		t.Error("AllSunk() should be false for an empty fleet")
	}
}

func TestComputeLine(t *testing.T) {
	g := NewGrid(DefaultSize)
	tests := []struct {
		start       string
		length      int
		orientation Orientation
		expected    []string
	}{
		{"A5", 5, Vertical, []string{"A5", "A6", "A7", "A8", "A9"}},
		{"A6", 5, Vertical, []string{"A6", "A7", "A8", "A9", "A10"}},
		{"A7", 5, Vertical, nil},
		{"B3", 2, Horizontal, []string{"B3", "C3"}},
		{"F1", 5, Horizontal, []string{"F1", "G1", "H1", "I1", "J1"}},
		{"G1", 5, Horizontal, nil},
		{"J10", 1, Horizontal, []string{"J10"}},
	}

	for _, tt := range tests {
		line := g.ComputeLine(mustParse(t, tt.start), tt.length, tt.orientation)
		if tt.expected == nil {
			if len(line) != 0 {
				t.Errorf("ComputeLine(%s, %d, %s) = %v, want empty", tt.start, tt.length, tt.orientation, encodeAll(line))
			}
			continue
		}
		if got := encodeAll(line); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ComputeLine(%s, %d, %s) = %v, want %v", tt.start, tt.length, tt.orientation, got, tt.expected)
		}
	}
}

func TestComputeLineStartOutOfBounds(t *testing.T) {
	g := NewGrid(DefaultSize)
	if line := g.ComputeLine(coord.New(-1, 0), 2, Vertical); len(line) != 0 {
		t.Errorf("ComputeLine from off-board start = %v, want empty", encodeAll(line))
	}
}

func TestPlaceOverlapRejected(t *testing.T) {
	g := NewGrid(DefaultSize)
	placeAt(t, g, "Cruiser", 3, "B2", Horizontal)

	_, err := g.PlanPlacement(mustParse(t, "C1"), 3, Vertical)
	if !errors.Is(err, ErrPlacementOverlap) {
		t.Errorf("PlanPlacement() over an existing vessel error = %v, want ErrPlacementOverlap", err)
	}

	// Bypassing planning must still be rejected by Place.
	v := NewVessel("Submarine", 3, Vertical, []coord.Coord{
		coord.New(0, 2), coord.New(1, 2), coord.New(2, 2),
	})
	if err := g.Place(v); !errors.Is(err, ErrPlacementOverlap) {
		t.Errorf("Place() over an existing vessel error = %v, want ErrPlacementOverlap", err)
	}
	if len(g.Fleet()) != 1 {
		t.Errorf("fleet length after rejected placement = %d, want 1", len(g.Fleet()))
	}
	if g.OccupiedCount() != 3 {
		t.Errorf("OccupiedCount() after rejected placement = %d, want 3", g.OccupiedCount())
	}
	if g.CellAt(coord.New(0, 2)).HasVessel() {
		t.Error("rejected placement left a partial write at C1")
	}
}

func TestPlaceOutOfBoundsRejected(t *testing.T) {
	g := NewGrid(DefaultSize)

	if _, err := g.PlanPlacement(mustParse(t, "J1"), 2, Horizontal); !errors.Is(err, ErrPlacementOutOfBounds) {
		t.Errorf("PlanPlacement() off the edge error = %v, want ErrPlacementOutOfBounds", err)
	}

	v := NewVessel("Patrol Boat", 2, Horizontal, []coord.Coord{coord.New(0, 9), coord.New(0, 10)})
	if err := g.Place(v); !errors.Is(err, ErrPlacementOutOfBounds) {
		t.Errorf("Place() off the edge error = %v, want ErrPlacementOutOfBounds", err)
	}
	if g.OccupiedCount() != 0 || len(g.Fleet()) != 0 {
		t.Error("rejected placement changed the grid")
	}
}

func TestGridOccupancyMatchesFleet(t *testing.T) {
	g := NewGrid(DefaultSize)
	rng := rand.New(rand.NewSource(12345))
	lengths := []int{5, 4, 3, 3, 2}
	for i, length := range lengths {
		if _, err := g.PlaceRandom("ship"+string(rune('A'+i)), length, rng); err != nil {
			t.Fatalf("PlaceRandom(%d) returned error: %v", length, err)
		}
	}

	total := 0
	seen := make(map[coord.Coord]*Vessel)
	for _, v := range g.Fleet() {
		total += v.Length()
		for _, c := range v.Coords() {
			if other, ok := seen[c]; ok {
				t.Errorf("%s is occupied by both %s and %s", c, other.Name(), v.Name())
			}
			seen[c] = v
			if g.VesselAt(c) != v {
				t.Errorf("VesselAt(%s) does not return %s", c, v.Name())
			}
		}
	}
	if g.OccupiedCount() != total {
		t.Errorf("OccupiedCount() = %d, want %d", g.OccupiedCount(), total)
	}
}

func TestPlaceRandomReproducible(t *testing.T) {
	g1 := NewGrid(DefaultSize)
	g2 := NewGrid(DefaultSize)
	rng1 := rand.New(rand.NewSource(54321))
	rng2 := rand.New(rand.NewSource(54321))

	for _, length := range []int{5, 4, 3, 3, 2} {
		v1, err1 := g1.PlaceRandom("ship", length, rng1)
		v2, err2 := g2.PlaceRandom("ship", length, rng2)
		if err1 != nil || err2 != nil {
			t.Fatalf("PlaceRandom() errors: %v, %v", err1, err2)
		}
		if !reflect.DeepEqual(v1.Coords(), v2.Coords()) {
			t.Errorf("same seed placed vessels differently: %v != %v", encodeAll(v1.Coords()), encodeAll(v2.Coords()))
		}
	}
}

func TestPlaceRandomNoRoom(t *testing.T) {
	g := NewGrid(2)
	rng := rand.New(rand.NewSource(1))
	if _, err := g.PlaceRandom("too long", 3, rng); !errors.Is(err, ErrNoRoom) {
		t.Errorf("PlaceRandom() on a tiny grid error = %v, want ErrNoRoom", err)
	}
}

func TestGuessMiss(t *testing.T) {
	g := NewGrid(DefaultSize)
	v := placeAt(t, g, "Cruiser", 3, "B2", Horizontal)

	outcome, err := g.Guess(mustParse(t, "E5"))
	if err != nil {
		t.Fatalf("Guess() returned error: %v", err)
	}
	if outcome.Result != ResultMiss {
		t.Errorf("Guess(E5) = %v, want miss", outcome)
	}
	if v.HitCount() != 0 {
		t.Errorf("miss changed vessel hit count to %d", v.HitCount())
	}
	if g.StateAt(mustParse(t, "E5")) != CellMiss {
		t.Errorf("StateAt(E5) = %v, want miss", g.StateAt(mustParse(t, "E5")))
	}
}

func TestGuessSinksVessel(t *testing.T) {
	g := NewGrid(DefaultSize)
	v := placeAt(t, g, "Submarine", 3, "D4", Vertical)

	expected := []Outcome{
		{Result: ResultHit},
		{Result: ResultHit},
		{Result: ResultSunk, Vessel: "Submarine"},
	}
	for i, s := range []string{"D4", "D5", "D6"} {
		outcome, err := g.Guess(mustParse(t, s))
		if err != nil {
			t.Fatalf("Guess(%s) returned error: %v", s, err)
		}
		if outcome != expected[i] {
			t.Errorf("Guess(%s) = %v, want %v", s, outcome, expected[i])
		}
		if i < 2 && v.IsSunk() {
			t.Errorf("vessel sunk after %d hits", i+1)
		}
	}
	if !v.IsSunk() || !g.AllSunk() {
		t.Error("vessel and fleet should be sunk")
	}
	if g.StateAt(mustParse(t, "D4")) != CellSunk {
		t.Errorf("StateAt(D4) = %v, want sunk", g.StateAt(mustParse(t, "D4")))
	}
}

func TestGuessOutOfBounds(t *testing.T) {
	g := NewGrid(DefaultSize)
	if _, err := g.Guess(coord.New(10, 0)); !errors.Is(err, coord.ErrOutOfBounds) {
		t.Errorf("Guess() off the board error = %v, want coord.ErrOutOfBounds", err)
	}
}

func TestViews(t *testing.T) {
	g := NewGrid(DefaultSize)
	placeAt(t, g, "Patrol Boat", 2, "B3", Horizontal)
	placeAt(t, g, "Cruiser", 3, "E1", Vertical)

	if _, err := g.Guess(mustParse(t, "B3")); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Guess(mustParse(t, "A1")); err != nil {
		t.Fatal(err)
	}

	owner := g.OwnerView()
	opponent := g.OpponentView()

	tests := []struct {
		at       string
		owner    Symbol
		opponent Symbol
	}{
		{"B3", SymbolHit, SymbolHit},
		{"C3", SymbolHorizontal, SymbolEmpty},
		{"E2", SymbolVertical, SymbolEmpty},
		{"A1", SymbolMiss, SymbolMiss},
		{"J10", SymbolEmpty, SymbolEmpty},
	}
	for _, tt := range tests {
		c := mustParse(t, tt.at)
		if got := owner[c.Row][c.Col]; got != tt.owner {
			t.Errorf("OwnerView()[%s] = %c, want %c", tt.at, got, tt.owner)
		}
		if got := opponent[c.Row][c.Col]; got != tt.opponent {
			t.Errorf("OpponentView()[%s] = %c, want %c", tt.at, got, tt.opponent)
		}
	}

	if _, err := g.Guess(mustParse(t, "C3")); err != nil {
		t.Fatal(err)
	}
	owner = g.OwnerView()
	opponent = g.OpponentView()
	for _, s := range []string{"B3", "C3"} {
		c := mustParse(t, s)
		if owner[c.Row][c.Col] != SymbolSunk || opponent[c.Row][c.Col] != SymbolSunk {
			t.Errorf("%s should read sunk in both views", s)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input    string
		expected Orientation
		valid    bool
	}{
		{"V", Vertical, true},
		{"h", Horizontal, true},
		{" vertical", Vertical, true},
		{"Horizontal", Horizontal, true},
		{"", Vertical, false},
		{"x", Vertical, false},
	}

	for _, tt := range tests {
		got, err := ParseOrientation(tt.input)
		if tt.valid && (err != nil || got != tt.expected) {
			t.Errorf("ParseOrientation(%q) = %v, %v, want %v", tt.input, got, err, tt.expected)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseOrientation(%q) should be invalid", tt.input)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, expected string
	}{
		{Vertical.String(), "vertical"},
		{Horizontal.String(), "horizontal"},
		{Orientation(9).String(), "unknown"},
		{ViewerOwner.String(), "owner"},
		{ViewerOpponent.String(), "opponent"},
		{CellSunk.String(), "sunk"},
		{CellState(9).String(), "invalid"},
		{Outcome{Result: ResultSunk, Vessel: "Battleship"}.String(), "sunk Battleship"},
		{Outcome{Result: ResultMiss}.String(), "miss"},
		{HitOutcomeSunk.String(), "sunk"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("String() = %q, want %q", tt.got, tt.expected)
		}
	}
}
