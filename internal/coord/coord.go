// Package coord provides grid coordinates and their human-readable encoding.
package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned when a coordinate string cannot be decoded.
	ErrInvalidFormat = errors.New("invalid coordinate format")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Coord is a zero-based (row, column) position on a grid.
type Coord struct {
	Row int
	Col int
}

// New is a convenience constructor for Coord.
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the human-readable form, e.g. row 4, column 0 is "A5".
func (c Coord) String() string {
	return Encode(c.Row, c.Col)
}

// Encode turns a zero-based row and column into a coordinate string.
// The column becomes the letter and the row becomes the 1-based number.
// Bounds are not checked.
func Encode(row, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// Decode parses a coordinate string such as "A5" or "d7".
func Decode(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Coord{}, fmt.Errorf("%w: %q is too short", ErrInvalidFormat, s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return Coord{}, fmt.Errorf("%w: %q must start with a letter", ErrInvalidFormat, s)
	}

	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Coord{}, fmt.Errorf("%w: %q must end with a number", ErrInvalidFormat, s)
		}
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number < 1 {
		return Coord{}, fmt.Errorf("%w: %q must end with a positive number", ErrInvalidFormat, s)
	}

	return Coord{Row: number - 1, Col: int(letter - 'A')}, nil
}

// InBounds reports whether both axes of c lie within a size x size grid.
func InBounds(c Coord, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Parse decodes s and checks that it fits on a size x size grid.
func Parse(s string, size int) (Coord, error) {
	c, err := Decode(s)
	if err != nil {
		return Coord{}, err
	}
	if !InBounds(c, size) {
		return Coord{}, fmt.Errorf("%w: %s is not on a %dx%d board", ErrOutOfBounds, c, size, size)
	}
	return c, nil
}
