package world

import (
	"fmt"

	"github.com/samdwyer/battleship/internal/coord"
)

// HitOutcome is the result of recording a hit on a vessel.
type HitOutcome int

const (
	HitOutcomeHit HitOutcome = iota
	HitOutcomeSunk
)

// String returns a human-readable outcome name.
func (h HitOutcome) String() string {
	switch h {
	case HitOutcomeHit:
		return "hit"
	case HitOutcomeSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Vessel is a ship placed on a grid. Its coordinates are fixed at creation;
// only the set of hit coordinates changes afterwards.
type Vessel struct {
	name        string
	length      int
	orientation Orientation
	coords      []coord.Coord
	hits        map[coord.Coord]struct{}
}

// NewVessel creates a vessel occupying coords. It panics if the number of
// coordinates does not match length.
func NewVessel(name string, length int, orientation Orientation, coords []coord.Coord) *Vessel {
	if len(coords) != length {
		panic(fmt.Sprintf("world: vessel %q has length %d but %d coordinates", name, length, len(coords)))
	}
	owned := make([]coord.Coord, len(coords))
	copy(owned, coords)
	return &Vessel{
		name:        name,
		length:      length,
		orientation: orientation,
		coords:      owned,
		hits:        make(map[coord.Coord]struct{}, length),
	}
}

// Name returns the vessel's display name.
func (v *Vessel) Name() string { return v.name }

// Length returns the number of positions the vessel occupies.
func (v *Vessel) Length() int { return v.length }

// Orientation returns the direction the vessel was placed in.
func (v *Vessel) Orientation() Orientation { return v.orientation }

// Coords returns a copy of the vessel's coordinates in placement order.
func (v *Vessel) Coords() []coord.Coord {
	out := make([]coord.Coord, len(v.coords))
	copy(out, v.coords)
	return out
}

// Occupies reports whether the vessel covers c.
func (v *Vessel) Occupies(c coord.Coord) bool {
	for _, own := range v.coords {
		if own == c {
			return true
		}
	}
	return false
}

// IsHitAt reports whether c has been hit.
func (v *Vessel) IsHitAt(c coord.Coord) bool {
	_, ok := v.hits[c]
	return ok
}

// HitCount returns how many distinct positions have been hit.
func (v *Vessel) HitCount() int { return len(v.hits) }

// IsSunk returns true once every position has been hit.
func (v *Vessel) IsSunk() bool { return len(v.hits) == v.length }

// RecordHit marks c as hit. Recording the same coordinate twice does not
// change the hit set. It panics if the vessel does not occupy c.
func (v *Vessel) RecordHit(c coord.Coord) HitOutcome {
	if !v.Occupies(c) {
		panic(fmt.Sprintf("world: vessel %q does not occupy %s", v.name, c))
	}
	v.hits[c] = struct{}{}
	if v.IsSunk() {
		return HitOutcomeSunk
	}
	return HitOutcomeHit
}

// StatusAt returns the symbol shown at c for the given viewer.
// Intact parts are only revealed to the owner.
func (v *Vessel) StatusAt(c coord.Coord, viewer Viewer) Symbol {
	switch {
	case v.IsSunk():
		return SymbolSunk
	case v.IsHitAt(c):
		return SymbolHit
	case viewer == ViewerOwner:
		return v.orientation.Symbol()
	default:
		return SymbolEmpty
	}
}
