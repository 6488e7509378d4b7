package world

// noVessel is the vessel index of a cell with open water.
const noVessel = -1

// Cell is a single grid position. It refers to its vessel by index into the
// owning grid's fleet and never stores display state of its own.
type Cell struct {
	vessel  int
	guessed bool
}

func emptyCell() Cell {
	return Cell{vessel: noVessel}
}

// HasVessel reports whether a vessel occupies the cell.
func (c Cell) HasVessel() bool {
	return c.vessel != noVessel
}

// VesselIndex returns the index of the occupying vessel in the grid's fleet,
// or -1 for open water.
func (c Cell) VesselIndex() int {
	return c.vessel
}

// Guessed reports whether the opponent has fired at this cell.
func (c Cell) Guessed() bool {
	return c.guessed
}
