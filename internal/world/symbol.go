// Package world provides the battleship grid, its cells and the vessels placed on it.
package world

import (
	"fmt"
	"strings"
)

// Symbol represents what a single grid position looks like to a viewer.
type Symbol rune

const (
	// SymbolVertical marks an intact part of a vertical vessel.
	SymbolVertical Symbol = '|'
	// SymbolHorizontal marks an intact part of a horizontal vessel.
	SymbolHorizontal Symbol = '-'
	// SymbolEmpty marks open water or an unknown position.
	SymbolEmpty Symbol = 'O'
	// SymbolMiss marks a guess that found open water.
	SymbolMiss Symbol = '.'
	// SymbolHit marks a hit on a vessel that is still afloat.
	SymbolHit Symbol = '*'
	// SymbolSunk marks every position of a sunk vessel.
	SymbolSunk Symbol = '#'
)

// Rune returns the symbol's display character.
func (s Symbol) Rune() rune {
	return rune(s)
}

// Viewer selects whose eyes a grid is rendered for.
type Viewer int

const (
	// ViewerOwner sees their own vessels.
	ViewerOwner Viewer = iota
	// ViewerOpponent only sees what guesses have revealed.
	ViewerOpponent
)

// String returns a human-readable viewer name.
func (v Viewer) String() string {
	switch v {
	case ViewerOwner:
		return "owner"
	case ViewerOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Orientation is the direction a vessel extends from its starting coordinate.
type Orientation int

const (
	// Vertical vessels extend downward (increasing row).
	Vertical Orientation = iota
	// Horizontal vessels extend rightward (increasing column).
	Horizontal
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Symbol returns the owner-view symbol for an intact vessel part.
func (o Orientation) Symbol() Symbol {
	if o == Vertical {
		return SymbolVertical
	}
	return SymbolHorizontal
}

// step returns the row and column delta between consecutive vessel parts.
func (o Orientation) step() (int, int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// ParseOrientation reads "V"/"H" (or any word starting with them, any case).
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Vertical, fmt.Errorf("orientation is empty")
	}
	switch strings.ToLower(s[:1]) {
	case "v":
		return Vertical, nil
	case "h":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// CellState is the visibility state of a cell, derived from its contents.
type CellState int

const (
	CellUnknown CellState = iota
	CellMiss
	CellHit
	CellSunk
)

// String returns a human-readable state name.
func (s CellState) String() string {
	switch s {
	case CellUnknown:
		return "unknown"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellSunk:
		return "sunk"
	default:
		return "invalid"
	}
}
