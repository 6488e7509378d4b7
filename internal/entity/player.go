// Package entity provides the players taking part in a game.
package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/battleship/internal/coord"
	"github.com/samdwyer/battleship/internal/world"
)

// ErrDuplicateGuess is returned when a player fires at a coordinate they already tried.
var ErrDuplicateGuess = errors.New("coordinate already guessed")

// Player binds a display name to a grid and the guesses made against the opponent.
type Player struct {
	ID      string      // Random identifier used in telemetry
	Name    string      // Display name
	Grid    *world.Grid // The player's own board
	guesses []coord.Coord
	guessed map[coord.Coord]bool
}

// NewPlayer creates a player with an empty size x size grid.
func NewPlayer(name string, size int) *Player {
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		Grid:    world.NewGrid(size),
		guesses: make([]coord.Coord, 0),
		guessed: make(map[coord.Coord]bool),
	}
}

// Fleet returns the vessels placed on the player's grid.
func (p *Player) Fleet() []*world.Vessel {
	return p.Grid.Fleet()
}

// PlaceVessel validates and places a vessel on the player's grid.
func (p *Player) PlaceVessel(name string, length int, start coord.Coord, orientation world.Orientation) (*world.Vessel, error) {
	line, err := p.Grid.PlanPlacement(start, length, orientation)
	if err != nil {
		return nil, err
	}
	v := world.NewVessel(name, length, orientation, line)
	if err := p.Grid.Place(v); err != nil {
		return nil, err
	}
	return v, nil
}

// HasGuessed reports whether the player already fired at c.
func (p *Player) HasGuessed(c coord.Coord) bool {
	return p.guessed[c]
}

// RecordGuess appends c to the guess history.
func (p *Player) RecordGuess(c coord.Coord) error {
	if p.guessed[c] {
		return fmt.Errorf("%w: %s", ErrDuplicateGuess, c)
	}
	p.guessed[c] = true
	p.guesses = append(p.guesses, c)
	return nil
}

// Guesses returns a copy of the guess history in chronological order.
func (p *Player) Guesses() []coord.Coord {
	out := make([]coord.Coord, len(p.guesses))
	copy(out, p.guesses)
	return out
}

// ShipsLeft returns true if any placed vessel is still afloat.
func (p *Player) ShipsLeft() bool {
	return p.Grid.AfloatCount() > 0
}
