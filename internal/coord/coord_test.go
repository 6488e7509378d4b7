package coord

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "A1"},
		{4, 0, "A5"},
		{2, 1, "B3"},
		{9, 9, "J10"},
	}

	for _, tt := range tests {
		got := Encode(tt.row, tt.col)
		if got != tt.expected {
			t.Errorf("Encode(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const size = 10
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			s := Encode(row, col)
			got, err := Decode(s)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", s, err)
			}
			if got != New(row, col) {
				t.Errorf("Decode(Encode(%d, %d)) = %+v, want %+v", row, col, got, New(row, col))
			}
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		expected Coord
		valid    bool
	}{
		{"A5", Coord{Row: 4, Col: 0}, true},
		{"d7", Coord{Row: 6, Col: 3}, true},
		{" B3 ", Coord{Row: 2, Col: 1}, true},
		{"J10", Coord{Row: 9, Col: 9}, true},
		{"Z99", Coord{Row: 98, Col: 25}, true}, // decodes, bounds are checked separately
		{"", Coord{}, false},
		{"A", Coord{}, false},
		{"55", Coord{}, false},
		{"A0", Coord{}, false},
		{"A-1", Coord{}, false},
		{"AB", Coord{}, false},
		{"A5x", Coord{}, false},
		{"#5", Coord{}, false},
	}

	for _, tt := range tests {
		got, err := Decode(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("Decode(%q) should be valid, got error: %v", tt.input, err)
				continue
			}
			if got != tt.expected {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidFormat", tt.input, err)
		}
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		c        Coord
		expected bool
	}{
		{New(0, 0), true},
		{New(9, 9), true},
		{New(10, 0), false},
		{New(0, 10), false},
		{New(-1, 0), false},
		{New(0, -1), false},
	}

	for _, tt := range tests {
		if got := InBounds(tt.c, 10); got != tt.expected {
			t.Errorf("InBounds(%+v, 10) = %v, want %v", tt.c, got, tt.expected)
		}
	}
}

func TestParse(t *testing.T) {
	if c, err := Parse("c4", 10); err != nil || c != New(3, 2) {
		t.Errorf("Parse(\"c4\", 10) = %+v, %v, want %+v, nil", c, err, New(3, 2))
	}
	if _, err := Parse("K1", 10); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Parse(\"K1\", 10) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := Parse("A11", 10); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Parse(\"A11\", 10) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := Parse("hello", 10); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse(\"hello\", 10) error = %v, want ErrInvalidFormat", err)
	}
}

func TestAdd(t *testing.T) {
	if got := New(2, 3).Add(1, -1); got != New(3, 2) {
		t.Errorf("Add(1, -1) = %+v, want %+v", got, New(3, 2))
	}
}
