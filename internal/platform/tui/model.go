package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

// chromeRows is the number of terminal rows below the board: platform
// status line, prompt and key help.
const chromeRows = 3

// maxRecall bounds the command recall buffer.
const maxRecall = 50

type statusKind int

const (
	statusInfo statusKind = iota
	statusErr
)

// GameModel runs one game: it owns the command prompt, forwards parsed
// commands to the game and records finished games in the store.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger

	input textinput.Model
	help  help.Model
	keys  GameKeyMap

	recall    []string
	recallPos int

	status     string
	statusKind statusKind
	saved      bool // result for the current deal is stored
	embedded   bool // running inside a SessionModel; esc returns to its menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and deals the first game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.Prompt
	ti.Placeholder = "draw | move W T1 | undo | new | help | quit"
	ti.CharLimit = 64
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, boardRows(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		logger:    logger,
		input:     ti,
		help:      h,
		keys:      DefaultGameKeyMap(),
	}
}

func boardRows(termH int) int {
	return max(1, termH-chromeRows)
}

// Init starts the cursor blink and the clock.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Redraw advances the clock
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		return m.leave()

	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		return m.submit(line)

	case key.Matches(msg, m.keys.Prev):
		m.recallStep(-1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.recallStep(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// leave ends the game view: back to the session menu when embedded,
// otherwise the program exits.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.recordAbandoned()
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// submit parses a typed line and applies it to the game.
func (m GameModel) submit(line string) (tea.Model, tea.Cmd) {
	cmd, err := core.ParseCommand(line)
	switch {
	case errors.Is(err, core.ErrEmptyCommand):
		return m, nil
	case errors.Is(err, core.ErrMoveUsage):
		m.setStatus("Usage: move <source> <destination>  (e.g. move W T1)", statusErr)
		return m, nil
	case err != nil:
		m.setStatus("Unknown command. Type 'help' for options.", statusErr)
		return m, nil
	}
	m.remember(strings.TrimSpace(line))

	if cmd.Kind == core.CommandNew {
		m.recordAbandoned()
	}

	res := m.game.Apply(cmd)

	if cmd.Kind == core.CommandNew {
		m.config.Seed++
		m.saved = false
	}
	if res.Quit {
		return m.leave()
	}

	// The board shows the game's own outcome line
	m.setStatus("", statusInfo)
	if res.State.Won {
		m.recordResult(res.State)
	}
	return m, nil
}

func (m *GameModel) setStatus(text string, kind statusKind) {
	m.status = text
	m.statusKind = kind
}

// remember appends a command to the recall buffer.
func (m *GameModel) remember(line string) {
	if n := len(m.recall); n == 0 || m.recall[n-1] != line {
		m.recall = append(m.recall, line)
		if len(m.recall) > maxRecall {
			m.recall = m.recall[1:]
		}
	}
	m.recallPos = len(m.recall)
}

// recallStep moves through previously submitted commands.
func (m *GameModel) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallPos = min(max(m.recallPos+delta, 0), len(m.recall))
	if m.recallPos == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallPos])
	m.input.CursorEnd()
}

// recordResult stores the current deal once. Wins also enter the high
// score table. Storage failures are logged and never interrupt play.
func (m *GameModel) recordResult(state core.GameState) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	if state.Won && state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	id, err := m.store.SaveGameResult(storage.GameResult{
		Variant:  m.game.ID(),
		Score:    state.Score,
		Won:      state.Won,
		Moves:    state.Moves,
		Duration: state.Elapsed,
		Seed:     m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save game result", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("game result saved", "id", id, "game", m.game.ID(), "won", state.Won)
}

// recordAbandoned stores a deal the player walks away from, as long as
// they made at least one move.
func (m *GameModel) recordAbandoned() {
	state := m.game.State()
	if state.Moves == 0 || state.Won {
		return
	}
	m.recordResult(state)
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("Cannot save board: no home directory.", statusErr)
		return
	}
	dir := filepath.Join(home, ".solitaire", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("Cannot save board: "+err.Error(), statusErr)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("Cannot save board: "+err.Error(), statusErr)
		return
	}
	m.setStatus("Board saved to "+path, statusInfo)
}

// View renders the board, the status line, the prompt and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	style := theme.StatusInfo
	if m.statusKind == statusErr {
		style = theme.StatusErr
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(style.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
