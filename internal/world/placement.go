package world

import (
	"errors"
	"math/rand"

	"github.com/samdwyer/battleship/internal/coord"
)

// maxPlacementAttempts bounds the random search for a free line.
const maxPlacementAttempts = 1000

// ErrNoRoom is returned when random placement cannot find a free line.
var ErrNoRoom = errors.New("no room left for vessel")

// PlaceRandom places a new vessel at a random legal position and returns it.
func (g *Grid) PlaceRandom(name string, length int, rng *rand.Rand) (*Vessel, error) {
	for i := 0; i < maxPlacementAttempts; i++ {
		start := coord.New(rng.Intn(g.Size), rng.Intn(g.Size))
		orientation := Vertical
		if rng.Intn(2) == 1 {
			orientation = Horizontal
		}

		line, err := g.PlanPlacement(start, length, orientation)
		if err != nil {
			continue
		}
		v := NewVessel(name, length, orientation, line)
		if err := g.Place(v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, ErrNoRoom
}
