package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

type menuEntry int

const (
	entryVariant menuEntry = iota
	entryScores
	entryQuit
)

// MenuItem is one menu line: a variant with the player's record on it,
// or one of the menu's own actions.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Record storage.WinStats
	entry  menuEntry
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel builds the menu from the registered variants. Records are
// read from store when it is non-nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		items = append(items, variantItem(store, g))
	}
	items = append(items,
		MenuItem{Title: "Scoreboard", entry: entryScores},
		MenuItem{Title: "Quit", entry: entryQuit},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func variantItem(store *storage.Store, g registry.GameInfo) MenuItem {
	item := MenuItem{GameID: g.ID, Title: g.Title, entry: entryVariant}
	if store == nil {
		return item
	}
	if best, err := store.HighScore(g.ID); err == nil {
		item.Best = best
	}
	if rec, err := store.GetWinStats(g.ID); err == nil {
		item.Record = rec
	}
	return item
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.entry {
		case entryScores:
			m.openScoreboard = true
		case entryQuit:
			m.quitting = true
		default:
			m.selected = &item
		}
		return m, tea.Quit
	}
	return m, nil
}

// recordLine describes the highlighted variant's record.
func recordLine(item MenuItem) string {
	switch item.entry {
	case entryScores:
		return "Best scores and recent games for each variant."
	case entryQuit:
		return "Leave solitaire."
	}
	rec := item.Record
	if rec.Played == 0 {
		return "No games played yet."
	}
	line := fmt.Sprintf("Won %d of %d (%.0f%%)", rec.Won, rec.Played, rec.WinRate()*100)
	if item.Best > 0 {
		line = fmt.Sprintf("Best %d  ", item.Best) + line
	}
	if rec.Won > 0 {
		line += "  Fastest " + formatDuration(rec.BestTime)
	}
	return line
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, item := range m.items {
		if i > 0 {
			list.WriteString("\n")
		}
		if item.entry != entryVariant && (i == 0 || m.items[i-1].entry == entryVariant) {
			list.WriteString("\n")
		}
		if i == m.cursor {
			list.WriteString(theme.MenuItemActive.Render("> " + item.Title))
		} else {
			list.WriteString(theme.MenuItemNormal.Render("  " + item.Title))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2).
		Render(list.String())

	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		theme.MenuTitle.Render("K L O N D I K E"),
		"",
		box,
		"",
		recordLine(m.items[m.cursor]),
		"",
		theme.MenuDescription.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// Selected returns the selected variant, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
