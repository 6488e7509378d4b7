package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleship/internal/combat"
	"github.com/samdwyer/battleship/internal/coord"
	"github.com/samdwyer/battleship/internal/entity"
	"github.com/samdwyer/battleship/internal/gamedata"
	"github.com/samdwyer/battleship/internal/telemetry"
	"github.com/samdwyer/battleship/internal/ui"
	"github.com/samdwyer/battleship/internal/world"
)

const (
	title    = "BATTLESHIP"
	maxInput = 32
)

// Game holds the entire game state.
type Game struct {
	id       string
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	legend   *gamedata.Legend
	catalog  *gamedata.Catalog
	engine   *combat.Engine
	rng      *rand.Rand
	running  bool

	stage       Stage
	afterHand   Stage              // Stage entered when a hand-off is confirmed
	names       []string           // Names entered so far
	orientation *world.Orientation // Direction chosen for the vessel being placed
	input       []rune             // Line being typed
	messages    []string           // Feedback shown under the boards
	showHelp    bool               // Append the symbol legend to the turn screen
	lastGuess   string             // Outcome of the most recent guess
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg)
}

func newGame(screen *ui.Screen, cfg Config) (*Game, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}
	legend, err := gamedata.LoadLegend()
	if err != nil {
		return nil, err
	}

	return &Game{
		id:       uuid.NewString(),
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, legend),
		legend:   legend,
		catalog:  catalog,
		rng:      cfg.newRand(),
		running:  true,
		stage:    StageNames,
	}, nil
}

// Run executes the main game loop until the players quit or the game ends.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("grid.size", world.DefaultSize),
		attribute.Int("fleet.count", g.catalog.Count()),
		attribute.Bool("autoplace", g.cfg.AutoPlace),
	)
	span.End()

	for g.running {
		g.renderer.Render(g.Frame())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen was finalized.
		g.running = false
	}
}

// handleKeyEvent edits the input line and submits it on ENTER.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEnter:
		line := string(g.input)
		g.input = g.input[:0]
		g.Submit(ctx, line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case tcell.KeyRune:
		if len(g.input) < maxInput {
			g.input = append(g.input, ev.Rune())
		}
	}
}

// Stage returns what the game is currently asking for.
func (g *Game) Stage() Stage {
	return g.stage
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Engine returns the combat engine, or nil before both names are entered.
func (g *Game) Engine() *combat.Engine {
	return g.engine
}

// Submit handles one line of input for the current stage.
func (g *Game) Submit(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	g.messages = nil

	switch g.stage {
	case StageNames:
		g.submitName(ctx, line)
	case StagePlacing:
		g.submitPlacement(ctx, line)
	case StageHandoff:
		g.stage = g.afterHand
	case StageTurn:
		g.submitGuess(ctx, line)
	case StageResult:
		g.finishTurn()
	case StageOver:
		g.running = false
	}
}

// submitName records a player name and starts placement after the second.
func (g *Game) submitName(ctx context.Context, name string) {
	if name == "" {
		g.messages = []string{"You have to enter something!"}
		return
	}
	g.names = append(g.names, name)
	if len(g.names) < 2 {
		return
	}

	p1 := entity.NewPlayer(g.names[0], world.DefaultSize)
	p2 := entity.NewPlayer(g.names[1], world.DefaultSize)
	g.engine = combat.New(p1, p2, g.catalog)

	if g.cfg.AutoPlace {
		g.autoPlace(ctx)
		g.autoPlace(ctx)
		return
	}

	g.handoff(StagePlacing,
		"Time to place the vessels on board.",
		fmt.Sprintf("%s goes first. %s, look away for a moment.", p1.Name, p2.Name),
	)
}

// submitPlacement handles the direction prompt and then the starting point prompt.
func (g *Game) submitPlacement(ctx context.Context, line string) {
	if g.orientation == nil {
		if strings.EqualFold(line, "r") || strings.EqualFold(line, "random") {
			g.autoPlace(ctx)
			return
		}
		o, err := world.ParseOrientation(line)
		if err != nil {
			g.messages = []string{"Please type only 'V' or 'H' for selecting the direction."}
			return
		}
		g.orientation = &o
		return
	}

	start, err := coord.Parse(line, world.DefaultSize)
	if err != nil {
		g.messages = []string{placementErrorMessage(strings.ToUpper(line), err)}
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.place")
	defer span.End()

	placer := g.engine.Active()
	def, _ := g.engine.NextVessel()
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.String("player.id", placer.ID),
		attribute.String("vessel", def.Name),
		attribute.String("start", start.String()),
		attribute.String("orientation", g.orientation.String()),
	)

	orientation := *g.orientation
	g.orientation = nil
	if _, err := g.engine.Place(start, orientation); err != nil {
		span.SetAttributes(attribute.String("rejected", err.Error()))
		g.messages = []string{placementErrorMessage(start.String(), err)}
		return
	}

	g.afterPlacement(placer)
}

// autoPlace places the rest of the active player's fleet at random.
func (g *Game) autoPlace(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.autoplace")
	defer span.End()

	placer := g.engine.Active()
	placed, err := g.engine.AutoPlace(g.rng)
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.String("player.id", placer.ID),
		attribute.Int("vessels_placed", len(placed)),
	)
	if err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		g.messages = []string{fmt.Sprintf("Could not place the fleet at random: %v", err)}
		return
	}
	g.orientation = nil
	g.afterPlacement(placer)
}

// afterPlacement hands over once a player's fleet is complete.
func (g *Game) afterPlacement(placer *entity.Player) {
	state := g.engine.State()
	switch {
	case state.Phase == combat.PhasePlacing && g.engine.Active() == placer:
		// More vessels to place.
	case state.Phase == combat.PhasePlacing:
		g.handoff(StagePlacing,
			fmt.Sprintf("%s, you're all set!", placer.Name),
			fmt.Sprintf("%s, time to add your ships.", g.engine.Active().Name),
		)
	default:
		g.handoff(StageTurn,
			fmt.Sprintf("%s, you're all set!", placer.Name),
			fmt.Sprintf("Let's play! %s, you go first.", g.engine.Active().Name),
		)
	}
}

// submitGuess resolves a guess or explains why it was refused.
func (g *Game) submitGuess(ctx context.Context, line string) {
	g.showHelp = false
	upper := strings.ToUpper(line)
	if upper == "HELP" {
		g.showHelp = true
		return
	}

	c, err := coord.Parse(upper, world.DefaultSize)
	if err != nil {
		g.messages = []string{guessErrorMessage(upper, err)}
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.guess")
	defer span.End()

	guesser := g.engine.Active()
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.String("player.id", guesser.ID),
		attribute.String("coordinate", c.String()),
		attribute.Int("turn", g.engine.TurnCount()+1),
	)

	outcome, err := g.engine.ResolveGuess(c)
	if err != nil {
		span.SetAttributes(attribute.String("rejected", err.Error()))
		g.messages = []string{guessErrorMessage(c.String(), err)}
		return
	}
	span.SetAttributes(attribute.String("outcome", outcome.String()))
	if outcome.Result == world.ResultSunk {
		span.SetAttributes(attribute.String("vessel", outcome.Vessel))
	}

	g.lastGuess = OutcomeMessage(c, outcome)
	g.stage = StageResult

	if winner, over := g.engine.Winner(); over {
		g.endGame(ctx, winner)
	}
}

// finishTurn leaves the result screen.
func (g *Game) finishTurn() {
	if _, over := g.engine.Winner(); over {
		g.stage = StageOver
		return
	}
	g.handoff(StageTurn, fmt.Sprintf("%s, you're up.", g.engine.Active().Name))
}

// endGame records the winner.
func (g *Game) endGame(ctx context.Context, winner string) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.String("winner", winner),
		attribute.Int("turns_taken", g.engine.TurnCount()),
	)
	span.End()
}

// handoff shows a screen without boards until ENTER is pressed.
func (g *Game) handoff(next Stage, lines ...string) {
	g.stage = StageHandoff
	g.afterHand = next
	g.messages = append(g.messages, lines...)
}

// Frame describes what should be on screen for the current stage.
func (g *Game) Frame() ui.Frame {
	f := ui.Frame{Title: title, Input: string(g.input)}

	switch g.stage {
	case StageNames:
		f.Lines = append(f.Lines, "Welcome to play the Battleship-game!")
		f.Prompt = fmt.Sprintf("Please, enter the name of player %d: ", len(g.names)+1)

	case StageHandoff:
		f.Prompt = "Press ENTER to continue. "

	case StagePlacing:
		placer := g.engine.Active()
		def, _ := g.engine.NextVessel()
		f.Boards = []ui.BoardView{ownerBoard(placer)}
		f.Lines = append(f.Lines,
			fmt.Sprintf("Adding ships for %s:", placer.Name),
			fmt.Sprintf("Adding the following vessel: %s, (size:%d)", def.Name, def.Size),
		)
		if g.orientation == nil {
			f.Prompt = "Indicate the ship's direction, [V]ertical or [H]orizontal ([R]andom places the rest): "
		} else {
			f.Prompt = "Give the starting point (e.g. 'A5'), the vessel runs down or right: "
		}

	case StageTurn:
		active := g.engine.Active()
		f.Boards = g.turnBoards()
		f.Lines = append(f.Lines, fmt.Sprintf("%s, you're up.", active.Name))
		if g.showHelp {
			f.Lines = append(f.Lines, "GAME SYMBOLS:")
			f.Lines = append(f.Lines, g.legend.Lines()...)
		}
		f.Prompt = fmt.Sprintf("Enter %s's guess (e.g. 'A5' or 'D7') or 'HELP': ", active.Name)

	case StageResult:
		f.Boards = g.turnBoards()
		f.Lines = append(f.Lines, g.lastGuess)
		if winner, over := g.engine.Winner(); over {
			f.Lines = append(f.Lines, fmt.Sprintf("%s, you win the game!", winner))
			f.Prompt = "Press ENTER to see the status of the boards. "
		} else {
			f.Prompt = "Press ENTER to give the turn to the other player. "
		}

	case StageOver:
		players := g.engine.Players()
		f.Boards = []ui.BoardView{ownerBoard(players[0]), ownerBoard(players[1])}
		if winner, over := g.engine.Winner(); over {
			f.Lines = append(f.Lines, fmt.Sprintf("%s won after %d guesses.", winner, g.engine.TurnCount()))
		}
		f.Prompt = "Press ENTER to quit. "
	}

	f.Lines = append(f.Lines, g.messages...)
	return f
}

// turnBoards shows the opponent's board as seen by the guesser next to the
// guesser's own board. On the result screen the guesser is the player who
// just fired, which the engine no longer reports as active.
func (g *Game) turnBoards() []ui.BoardView {
	guesser, target := g.engine.Active(), g.engine.Opponent()
	if g.stage == StageResult {
		if _, over := g.engine.Winner(); !over {
			guesser, target = target, guesser
		}
	}
	return []ui.BoardView{
		{Title: target.Name + "'s board:", Symbols: target.Grid.OpponentView()},
		ownerBoard(guesser),
	}
}

func ownerBoard(p *entity.Player) ui.BoardView {
	return ui.BoardView{Title: p.Name + "'s board:", Symbols: p.Grid.OwnerView()}
}
