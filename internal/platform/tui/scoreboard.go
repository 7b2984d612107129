package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

const (
	recentLimit = 50 // results listed per variant
	topLimit    = 3  // best winning scores on the summary line

	// Rows around the table: title, tabs, record, best wins, blank
	// lines and the help bar.
	scoreboardChrome = 9
)

var resultColumns = []table.Column{
	{Title: "Date", Width: 12},
	{Title: "Result", Width: 6},
	{Title: "Score", Width: 6},
	{Title: "Moves", Width: 6},
	{Title: "Time", Width: 6},
	{Title: "Seed", Width: 20},
}

// resultTableWidth is the sum of the columns plus one cell of padding on
// each side of every column.
func resultTableWidth() int {
	w := 0
	for _, c := range resultColumns {
		w += c.Width + 2
	}
	return w
}

type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

func defaultScoreboardKeys() scoreboardKeyMap {
	return scoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the record of one variant at a time: win
// statistics, the best winning scores and a table of recent games.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store

	top     []storage.ScoreEntry
	record  storage.WinStats
	results []storage.GameResult

	table table.Model
	help  help.Model
	keys  scoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // running inside a SessionModel; back does not exit the program
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	t := table.New(
		table.WithColumns(resultColumns),
		table.WithWidth(resultTableWidth()),
		table.WithFocused(true),
		table.WithHeight(max(3, height-scoreboardChrome)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		table:    t,
		help:     help.New(),
		keys:     defaultScoreboardKeys(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.load()
	return m
}

// load reads the current variant's record from the store.
func (m *ScoreboardModel) load() {
	m.top, m.record, m.results = nil, storage.WinStats{}, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if top, err := m.store.TopScores(id, topLimit); err == nil {
			m.top = top
		}
		if rec, err := m.store.GetWinStats(id); err == nil {
			m.record = rec
		}
		if results, err := m.store.RecentResults(id, recentLimit); err == nil {
			m.results = results
		}
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = resultRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultRow(r storage.GameResult) table.Row {
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		outcome,
		strconv.Itoa(r.Score),
		strconv.Itoa(r.Moves),
		formatDuration(r.Duration),
		strconv.FormatInt(r.Seed, 10),
	}
}

// statsLine summarizes the recorded results of the current variant.
func (m ScoreboardModel) statsLine() string {
	w := m.record
	if w.Played == 0 {
		return "No games recorded."
	}
	line := fmt.Sprintf("Played %d  Won %d  Win rate %.0f%%", w.Played, w.Won, w.WinRate()*100)
	if w.Won > 0 {
		line += fmt.Sprintf("  Best time %s  Fewest moves %d", formatDuration(w.BestTime), w.FewestMoves)
	}
	return line
}

func (m ScoreboardModel) bestLine() string {
	if len(m.top) == 0 {
		return "No wins yet."
	}
	scores := make([]string, len(m.top))
	for i, s := range m.top {
		scores[i] = strconv.Itoa(s.Score)
	}
	return "Best wins: " + strings.Join(scores, "  ")
}

// formatDuration renders a duration as mm:ss.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.switchVariant(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(3, msg.Height-scoreboardChrome))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchVariant(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.MenuTitle.Render("SCOREBOARD"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = theme.MenuItemActive.Render("[" + v.Title + "]")
		} else {
			tabs[i] = theme.MenuItemNormal.Render(" " + v.Title + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	b.WriteString(m.statsLine())
	b.WriteString("\n")
	b.WriteString(theme.MenuDescription.Render(m.bestLine()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(theme.Help.Render("No games recorded yet. Finish or leave a game to fill this board."))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
