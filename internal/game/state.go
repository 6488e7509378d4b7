// Package game provides the interactive game loop around the combat engine.
package game

// Stage represents what the game is currently asking the players for.
type Stage int

const (
	// StageNames collects both player names.
	StageNames Stage = iota
	// StagePlacing asks for the direction and starting point of the next vessel.
	StagePlacing
	// StageHandoff hides the boards until the next player presses ENTER.
	StageHandoff
	// StageTurn asks the active player for a guess.
	StageTurn
	// StageResult shows the outcome of the last guess.
	StageResult
	// StageOver reveals both boards after the game has been won.
	StageOver
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageNames:
		return "names"
	case StagePlacing:
		return "placing"
	case StageHandoff:
		return "handoff"
	case StageTurn:
		return "turn"
	case StageResult:
		return "result"
	case StageOver:
		return "over"
	default:
		return "unknown"
	}
}
