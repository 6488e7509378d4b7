// Package combat provides the turn state machine for a two-player game.
package combat

// Phase represents the current phase of the game.
type Phase int

const (
	// PhasePlacing - the active player is placing their fleet
	PhasePlacing Phase = iota
	// PhaseTurn - the active player fires at the opponent's grid
	PhaseTurn
	// PhaseGameOver - one fleet is destroyed; terminal
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlacing:
		return "placing"
	case PhaseTurn:
		return "turn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is a snapshot of the state machine.
type State struct {
	Phase  Phase
	Active int    // Index of the player placing or firing (0 or 1)
	Winner string // Set only in PhaseGameOver
}

// other returns the index of the player who is not active.
func (s State) other() int {
	return 1 - s.Active
}
