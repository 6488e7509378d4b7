package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/battleship/internal/coord"
	"github.com/samdwyer/battleship/internal/entity"
	"github.com/samdwyer/battleship/internal/world"
)

// OutcomeMessage describes the result of a guess for the players.
func OutcomeMessage(c coord.Coord, o world.Outcome) string {
	switch o.Result {
	case world.ResultMiss:
		return fmt.Sprintf("The guess was [%s]: That's a miss!", c)
	case world.ResultHit:
		return fmt.Sprintf("The guess was [%s]: That's a hit!", c)
	case world.ResultSunk:
		return fmt.Sprintf("The guess was [%s]: You sunk the %s!", c, o.Vessel)
	default:
		return fmt.Sprintf("The guess was [%s].", c)
	}
}

// guessErrorMessage explains why a guess was refused.
func guessErrorMessage(input string, err error) string {
	switch {
	case errors.Is(err, entity.ErrDuplicateGuess):
		return fmt.Sprintf("That point %s was already tried before! Please, try again.", input)
	default:
		return "Sorry, that point is not on the board. Please enter in form 'A5' for example."
	}
}

// placementErrorMessage explains why a placement was refused.
func placementErrorMessage(input string, err error) string {
	switch {
	case errors.Is(err, world.ErrPlacementOutOfBounds):
		return "You tried to place the vessel fully or partly outside the gameboard. Try again!"
	case errors.Is(err, world.ErrPlacementOverlap):
		return "You tried to place the vessel on top of another one. Try again!"
	default:
		return fmt.Sprintf("Sorry, this point %s is not on the board. Please enter in form e.g. 'A5'", input)
	}
}
