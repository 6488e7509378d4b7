package combat

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/battleship/internal/coord"
	"github.com/samdwyer/battleship/internal/entity"
	"github.com/samdwyer/battleship/internal/gamedata"
	"github.com/samdwyer/battleship/internal/world"
)

var (
	// ErrWrongPhase is returned for an operation that the current phase does not accept.
	ErrWrongPhase = errors.New("operation not allowed in this phase")
	// ErrGameOver is returned for any move after the game has ended.
	ErrGameOver = errors.New("game is over")
)

// Engine drives fleet placement for both players and then alternating guesses.
// All transitions happen synchronously inside Place, AutoPlace and ResolveGuess.
type Engine struct {
	players   [2]*entity.Player
	catalog   *gamedata.Catalog
	state     State
	placed    int // Catalog entries placed by the active player
	turnCount int
}

// New creates an engine in the Placing(p1) state.
func New(p1, p2 *entity.Player, catalog *gamedata.Catalog) *Engine {
	return &Engine{
		players: [2]*entity.Player{p1, p2},
		catalog: catalog,
		state:   State{Phase: PhasePlacing, Active: 0},
	}
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Players returns both players in turn order.
func (e *Engine) Players() [2]*entity.Player {
	return e.players
}

// Active returns the player currently placing or firing.
func (e *Engine) Active() *entity.Player {
	return e.players[e.state.Active]
}

// Opponent returns the player who is not active.
func (e *Engine) Opponent() *entity.Player {
	return e.players[e.state.other()]
}

// TurnCount returns the number of resolved guesses.
func (e *Engine) TurnCount() int {
	return e.turnCount
}

// Winner returns the winner's name once the game is over.
func (e *Engine) Winner() (string, bool) {
	if e.state.Phase != PhaseGameOver {
		return "", false
	}
	return e.state.Winner, true
}

// Catalog returns the fleet every player places.
func (e *Engine) Catalog() *gamedata.Catalog {
	return e.catalog
}

// NextVessel returns the catalog entry the active player must place next.
func (e *Engine) NextVessel() (gamedata.ShipDef, bool) {
	if e.state.Phase != PhasePlacing {
		return gamedata.ShipDef{}, false
	}
	return e.catalog.At(e.placed)
}

// Place places the next catalog vessel for the active player. A rejected
// placement leaves both the grid and the state unchanged.
func (e *Engine) Place(start coord.Coord, orientation world.Orientation) (*world.Vessel, error) {
	if err := e.expect(PhasePlacing); err != nil {
		return nil, err
	}

	def, _ := e.catalog.At(e.placed)
	v, err := e.Active().PlaceVessel(def.Name, def.Size, start, orientation)
	if err != nil {
		return nil, err
	}
	e.advancePlacement()
	return v, nil
}

// AutoPlace places every remaining catalog vessel for the active player at
// random, then transitions as if each had been placed by hand.
func (e *Engine) AutoPlace(rng *rand.Rand) ([]*world.Vessel, error) {
	if err := e.expect(PhasePlacing); err != nil {
		return nil, err
	}

	active := e.state.Active
	var placed []*world.Vessel
	for e.state.Phase == PhasePlacing && e.state.Active == active {
		def, _ := e.catalog.At(e.placed)
		v, err := e.Active().Grid.PlaceRandom(def.Name, def.Size, rng)
		if err != nil {
			return placed, fmt.Errorf("auto placing %s: %w", def.Name, err)
		}
		placed = append(placed, v)
		e.advancePlacement()
	}
	return placed, nil
}

// advancePlacement moves Placing(p1) -> Placing(p2) -> Turn(p1) once each
// player has placed the whole catalog.
func (e *Engine) advancePlacement() {
	e.placed++
	if e.placed < e.catalog.Count() {
		return
	}

	e.placed = 0
	if e.state.Active == 0 {
		e.state = State{Phase: PhasePlacing, Active: 1}
		return
	}
	e.state = State{Phase: PhaseTurn, Active: 0}
}

// ResolveGuess fires the active player's guess at the opponent's grid.
// Off-board and repeated guesses are rejected without changing any state.
func (e *Engine) ResolveGuess(c coord.Coord) (world.Outcome, error) {
	if err := e.expect(PhaseTurn); err != nil {
		return world.Outcome{}, err
	}

	guesser := e.Active()
	target := e.Opponent()
	if !target.Grid.InBounds(c) {
		return world.Outcome{}, fmt.Errorf("%w: %s", coord.ErrOutOfBounds, c)
	}
	if guesser.HasGuessed(c) {
		return world.Outcome{}, fmt.Errorf("%w: %s", entity.ErrDuplicateGuess, c)
	}

	outcome, err := target.Grid.Guess(c)
	if err != nil {
		return world.Outcome{}, err
	}
	if err := guesser.RecordGuess(c); err != nil {
		return world.Outcome{}, err
	}
	e.turnCount++

	if !target.ShipsLeft() {
		e.state = State{Phase: PhaseGameOver, Active: e.state.Active, Winner: guesser.Name}
		return outcome, nil
	}
	e.state = State{Phase: PhaseTurn, Active: e.state.other()}
	return outcome, nil
}

func (e *Engine) expect(phase Phase) error {
	if e.state.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if e.state.Phase != phase {
		return fmt.Errorf("%w: in %s, want %s", ErrWrongPhase, e.state.Phase, phase)
	}
	return nil
}
