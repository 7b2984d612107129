package klondike

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
)

// Variant IDs.
const (
	IDDrawOne   = "klondike"
	IDDrawThree = "klondike3"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts an Engine to the registry.Game interface: it resolves pile
// tokens, turns engine outcomes into status messages and renders the board.
type Game struct {
	drawCount int
	engine    *Engine
	config    core.RuntimeConfig
	showHelp  bool
	message   string
	now       func() time.Time
}

// NewGame creates a Klondike game for a draw count of 1 or 3.
func NewGame(drawCount int) (*Game, error) {
	if drawCount != 1 && drawCount != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDrawCount, drawCount)
	}
	return &Game{drawCount: drawCount, now: time.Now}, nil
}

// VariantID returns the registry ID for a draw count.
func VariantID(drawCount int) string {
	if drawCount == 3 {
		return IDDrawThree
	}
	return IDDrawOne
}

func init() {
	for _, n := range []int{1, 3} {
		registry.Register(VariantID(n), func() registry.Game {
			g, err := NewGame(n)
			if err != nil {
				panic(err)
			}
			return g
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return VariantID(g.drawCount)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.drawCount == 3 {
		return "Klondike (Draw 3)"
	}
	return "Klondike (Draw 1)"
}

// Reset deals a new game. Scoring comes from the solitaire config; a
// config that fails to load falls back to the defaults and the failure
// is reported in the deal message.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.showHelp = false

	scoring := DefaultScoring()
	sc, cfgErr := config.LoadSolitaire(configPath)
	if cfgErr == nil {
		scoring = Scoring{
			Foundation:     sc.Scoring.Foundation,
			WasteToTableau: sc.Scoring.WasteToTableau,
			Reveal:         sc.Scoring.Reveal,
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = g.now().UnixNano()
	}

	e, err := New(g.drawCount, WithSeed(seed), WithScoring(scoring), WithClock(g.now))
	if err != nil {
		// drawCount is checked by NewGame and the registered factories
		panic(fmt.Sprintf("klondike: %v", err))
	}
	g.engine = e
	g.message = fmt.Sprintf("New game dealt. Draw mode %d. Type 'help' for commands.", g.drawCount)
	if cfgErr != nil {
		g.message = fmt.Sprintf("Config not loaded (%v); using default scoring. ", cfgErr) + g.message
	}
}

// Apply executes one player command.
func (g *Game) Apply(cmd core.Command) core.StepResult {
	if g.engine == nil {
		g.Reset(g.config)
	}

	var err error
	switch cmd.Kind {
	case core.CommandDraw:
		err = g.draw()
	case core.CommandMove:
		err = g.move(cmd.Src, cmd.Dst)
	case core.CommandUndo:
		err = g.undo()
	case core.CommandHelp:
		g.showHelp = !g.showHelp
		g.message = ""
	case core.CommandNew:
		g.Reset(g.nextConfig())
	case core.CommandQuit:
		g.message = "Exiting game."
		return core.StepResult{State: g.State(), Message: g.message, Quit: true}
	default:
		err = core.ErrUnknownCommand
		g.message = "Unknown command. Type 'help' for options."
	}

	if err == nil && g.engine.IsWon() {
		g.message = fmt.Sprintf("Congratulations! You've won with a score of %d!", g.engine.Score())
	}
	return core.StepResult{State: g.State(), Message: g.message, Err: err}
}

// nextConfig returns the config for the next deal: a fixed seed advances
// so that seeded sessions stay reproducible without repeating the deal.
func (g *Game) nextConfig() core.RuntimeConfig {
	cfg := g.config
	if cfg.Seed != 0 {
		cfg.Seed++
	}
	return cfg
}

func (g *Game) draw() error {
	res, err := g.engine.Draw()
	if err != nil {
		g.message = "Stock and Waste are empty. Cannot draw."
		return err
	}
	g.message = fmt.Sprintf("Drew %d card(s) to Waste.", res.Drawn)
	if res.Recycled {
		g.message = "Waste pile recycled into Stock. " + g.message
	}
	return nil
}

func (g *Game) move(srcTok, dstTok string) error {
	src, err := ParsePileRef(srcTok)
	if err != nil {
		g.message = fmt.Sprintf("Invalid source pile: %s", srcTok)
		return err
	}
	dst, err := ParsePileRef(dstTok)
	if err != nil {
		g.message = fmt.Sprintf("Invalid destination pile: %s", dstTok)
		return err
	}

	res, err := g.engine.Move(src, dst)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoOpMove):
		g.message = "Source and destination piles cannot be the same."
		return err
	case errors.Is(err, ErrInvalidPile):
		g.message = fmt.Sprintf("Cannot move from %s to %s.", src, dst)
		return err
	case errors.Is(err, ErrNoMovableCard):
		g.message = fmt.Sprintf("%s is empty or its top card is face down.", src)
		return err
	case errors.Is(err, ErrIllegalMove):
		top, _ := g.engine.board.Pile(src).Top()
		g.message = fmt.Sprintf("Cannot move %s to %s. Invalid move.", top, dst)
		return err
	default:
		g.message = err.Error()
		return err
	}

	g.message = fmt.Sprintf("Moved %s from %s to %s.", res.Card, res.From, res.To)
	if res.Revealed {
		g.message += fmt.Sprintf(" Flipped card in %s.", res.From)
	}
	if res.Points > 0 {
		g.message += fmt.Sprintf(" (+%d score)", res.Points)
	}
	return nil
}

func (g *Game) undo() error {
	if _, err := g.engine.Undo(); err != nil {
		g.message = "Cannot undo further."
		return err
	}
	g.message = "Last move undone."
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.engine.Score(),
		Moves:   g.engine.Moves(),
		Elapsed: g.engine.Elapsed(),
		Won:     g.engine.IsWon(),
	}
}
