package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/battleship/internal/coord"
)

// DefaultSize is the width and height of a standard board.
const DefaultSize = 10

var (
	// ErrPlacementOutOfBounds is returned when a vessel would extend past the grid edge.
	ErrPlacementOutOfBounds = errors.New("vessel does not fit on the board")
	// ErrPlacementOverlap is returned when a vessel would cover an occupied cell.
	ErrPlacementOverlap = errors.New("vessel overlaps another vessel")
)

// Result classifies the outcome of a guess.
type Result int

const (
	ResultMiss Result = iota
	ResultHit
	ResultSunk
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultMiss:
		return "miss"
	case ResultHit:
		return "hit"
	case ResultSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

// Outcome is what a guess revealed. Vessel is set only for ResultSunk.
type Outcome struct {
	Result Result
	Vessel string
}

// String returns a short description such as "sunk Patrol Boat".
func (o Outcome) String() string {
	if o.Result == ResultSunk {
		return o.Result.String() + " " + o.Vessel
	}
	return o.Result.String()
}

// Grid is one player's board: Size x Size cells plus the vessels placed on them.
type Grid struct {
	Size  int
	cells [][]Cell
	fleet []*Vessel
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
		for col := range cells[row] {
			cells[row][col] = emptyCell()
		}
	}

	return &Grid{
		Size:  size,
		cells: cells,
		fleet: make([]*Vessel, 0),
	}
}

// InBounds returns true if c is on the grid.
func (g *Grid) InBounds(c coord.Coord) bool {
	return coord.InBounds(c, g.Size)
}

// CellAt returns the cell at c. Out-of-bounds positions read as open water.
func (g *Grid) CellAt(c coord.Coord) Cell {
	if !g.InBounds(c) {
		return emptyCell()
	}
	return g.cells[c.Row][c.Col]
}

// VesselAt returns the vessel occupying c, or nil.
func (g *Grid) VesselAt(c coord.Coord) *Vessel {
	cell := g.CellAt(c)
	if !cell.HasVessel() {
		return nil
	}
	return g.fleet[cell.vessel]
}

// Fleet returns the vessels placed on the grid in placement order.
func (g *Grid) Fleet() []*Vessel {
	return g.fleet
}

// AllSunk returns true if at least one vessel is placed and all are sunk.
func (g *Grid) AllSunk() bool {
	if len(g.fleet) == 0 {
		return false
	}
	for _, v := range g.fleet {
		if !v.IsSunk() {
			return false
		}
	}
	return true
}

// AfloatCount returns the number of vessels not yet sunk.
func (g *Grid) AfloatCount() int {
	count := 0
	for _, v := range g.fleet {
		if !v.IsSunk() {
			count++
		}
	}
	return count
}

// OccupiedCount returns the number of cells that hold a vessel.
func (g *Grid) OccupiedCount() int {
	count := 0
	for row := range g.cells {
		for _, cell := range g.cells[row] {
			if cell.HasVessel() {
				count++
			}
		}
	}
	return count
}

// IsRegionFree returns true if none of coords is occupied.
func (g *Grid) IsRegionFree(coords []coord.Coord) bool {
	for _, c := range coords {
		if g.CellAt(c).HasVessel() {
			return false
		}
	}
	return true
}

// ComputeLine returns the length coordinates starting at start and running
// down (vertical) or right (horizontal). It returns nil if the line does
// not fit on the grid; lines are never truncated.
func (g *Grid) ComputeLine(start coord.Coord, length int, orientation Orientation) []coord.Coord {
	if length < 1 {
		return nil
	}
	dRow, dCol := orientation.step()
	last := start.Add(dRow*(length-1), dCol*(length-1))
	if !g.InBounds(start) || !g.InBounds(last) {
		return nil
	}

	line := make([]coord.Coord, length)
	for i := range line {
		line[i] = start.Add(dRow*i, dCol*i)
	}
	return line
}

// PlanPlacement computes and validates the coordinates a vessel would occupy.
func (g *Grid) PlanPlacement(start coord.Coord, length int, orientation Orientation) ([]coord.Coord, error) {
	line := g.ComputeLine(start, length, orientation)
	if len(line) == 0 {
		return nil, fmt.Errorf("%w: %d cells %s from %s", ErrPlacementOutOfBounds, length, orientation, start)
	}
	if !g.IsRegionFree(line) {
		return nil, fmt.Errorf("%w: %d cells %s from %s", ErrPlacementOverlap, length, orientation, start)
	}
	return line, nil
}

// Place puts v on the grid. The grid is left untouched if any of the
// vessel's coordinates is off the board or already occupied.
func (g *Grid) Place(v *Vessel) error {
	for _, c := range v.coords {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %s at %s", ErrPlacementOutOfBounds, v.name, c)
		}
	}
	if !g.IsRegionFree(v.coords) {
		return fmt.Errorf("%w: %s", ErrPlacementOverlap, v.name)
	}

	index := len(g.fleet)
	for _, c := range v.coords {
		g.cells[c.Row][c.Col].vessel = index
	}
	g.fleet = append(g.fleet, v)
	return nil
}

// Guess fires at c. The caller is responsible for not firing at the same
// coordinate twice; a repeated guess reports the same kind of outcome
// without changing any vessel.
func (g *Grid) Guess(c coord.Coord) (Outcome, error) {
	if !g.InBounds(c) {
		return Outcome{}, fmt.Errorf("%w: %s", coord.ErrOutOfBounds, c)
	}

	cell := &g.cells[c.Row][c.Col]
	cell.guessed = true
	if !cell.HasVessel() {
		return Outcome{Result: ResultMiss}, nil
	}

	v := g.fleet[cell.vessel]
	if v.RecordHit(c) == HitOutcomeSunk {
		return Outcome{Result: ResultSunk, Vessel: v.name}, nil
	}
	return Outcome{Result: ResultHit}, nil
}

// StateAt derives the visibility state of the cell at c.
func (g *Grid) StateAt(c coord.Coord) CellState {
	cell := g.CellAt(c)
	if !cell.HasVessel() {
		if cell.guessed {
			return CellMiss
		}
		return CellUnknown
	}

	v := g.fleet[cell.vessel]
	switch {
	case v.IsSunk():
		return CellSunk
	case v.IsHitAt(c):
		return CellHit
	default:
		return CellUnknown
	}
}

// OwnerView renders the grid as its owner sees it.
func (g *Grid) OwnerView() [][]Symbol {
	return g.view(ViewerOwner)
}

// OpponentView renders the grid without revealing intact vessels.
func (g *Grid) OpponentView() [][]Symbol {
	return g.view(ViewerOpponent)
}

func (g *Grid) view(viewer Viewer) [][]Symbol {
	out := make([][]Symbol, g.Size)
	for row := range out {
		out[row] = make([]Symbol, g.Size)
		for col := range out[row] {
			out[row][col] = g.symbolAt(coord.New(row, col), viewer)
		}
	}
	return out
}

func (g *Grid) symbolAt(c coord.Coord, viewer Viewer) Symbol {
	cell := g.cells[c.Row][c.Col]
	if cell.HasVessel() {
		return g.fleet[cell.vessel].StatusAt(c, viewer)
	}
	if cell.guessed {
		return SymbolMiss
	}
	return SymbolEmpty
}
