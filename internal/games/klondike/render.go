package klondike

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-solitaire/internal/core"
)

const (
	columnWidth = 6 // card cell (4) plus gap (2)
	boardWidth  = TableauCount * columnWidth
	minWidth    = boardWidth
	minHeight   = 12
)

var helpLines = []string{
	"Klondike Solitaire",
	"",
	"Goal: build four foundations from Ace to King, one suit each.",
	"",
	"Commands:",
	"  draw, d                 turn cards from Stock to Waste",
	"  move, m <src> <dst>     move the top card between piles",
	"  undo, u                 revert the last draw or move",
	"  new, n                  deal a new game",
	"  help, h                 toggle this screen",
	"  quit, q                 leave the game",
	"",
	"Piles: S (stock), W (waste), T1-T7 (tableau), F1-F4 (foundations)",
	"Example: move W T3, m T7 F1",
	"",
	"Tableau: alternate colors, one rank lower. Only Kings on empty columns.",
	"Foundations: same suit, Ace first, then one rank higher.",
	"Scoring: +10 to foundation, +5 waste to tableau, +5 revealing a card.",
}

// Render draws the board: a header line, stock and waste, foundations,
// then the tableau columns with their labels and the last status message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	if dst.Width() < minWidth || dst.Height() < minHeight {
		renderTooSmall(dst)
		return
	}
	if g.showHelp {
		renderHelp(dst)
		return
	}

	v := g.engine.Snapshot()
	y := 0

	header := fmt.Sprintf("Score: %d  Time: %s  Draw Mode: %d", v.Score, formatElapsed(v.Elapsed), v.DrawCount)
	dst.DrawTextColored(0, y, header, core.ColorCyan)
	y++
	dst.DrawHLine(0, y, boardWidth, '-')
	y++

	x := dst.DrawTextColored(0, y, "Stock (S): ", core.ColorDefault)
	if len(v.Stock) > 0 {
		x = dst.DrawTextColored(x, y, "[XXX]", core.ColorGreen)
	} else {
		x = dst.DrawTextColored(x, y, "[---]", core.ColorRed)
	}
	x = dst.DrawTextColored(x, y, "   Waste (W): ", core.ColorDefault)
	drawWaste(dst, x, y, v.Waste, v.DrawCount)
	y++

	x = dst.DrawTextColored(0, y, "Foundations:", core.ColorDefault)
	for i, f := range v.Foundations {
		x = dst.DrawTextColored(x, y, fmt.Sprintf(" F%d: ", i+1), core.ColorDefault)
		if top, ok := f.Top(); ok {
			x = drawCard(dst, x, y, top)
		} else {
			x = dst.DrawTextColored(x, y, "[ ]", core.ColorGray)
		}
		x++
	}
	y++
	dst.DrawHLine(0, y, boardWidth, '-')
	y++

	dst.DrawText(0, y, "Tableau:")
	y++
	y = drawTableau(dst, y, v.Tableau)
	dst.DrawHLine(0, y, boardWidth, '-')
	y++

	if g.message != "" {
		dst.DrawTextColored(0, y, "> "+g.message, statusColor(v.Won))
	}
}

// drawWaste shows the newest cards of the waste, at most one per drawn card.
func drawWaste(dst *core.Screen, x, y int, waste Pile, drawCount int) {
	if len(waste) == 0 {
		dst.DrawTextColored(x, y, "[---]", core.ColorRed)
		return
	}
	start := max(0, len(waste)-drawCount)
	for _, c := range waste[start:] {
		x = drawCard(dst, x, y, c) + 1
	}
}

// drawTableau draws the columns row by row followed by the T1..T7 labels
// and returns the next free row.
func drawTableau(dst *core.Screen, y int, cols [TableauCount]Pile) int {
	depth := 0
	for _, col := range cols {
		depth = max(depth, len(col))
	}

	for row := 0; row < depth; row++ {
		for i, col := range cols {
			if row >= len(col) {
				continue
			}
			drawCard(dst, i*columnWidth, y, col[row])
		}
		y++
	}

	for i := range cols {
		label := TableauPile(i).String()
		dst.DrawTextColored(i*columnWidth, y, label, core.ColorYellow)
	}
	return y + 1
}

// drawCard draws one card in its suit color, or a blue XX when face down.
func drawCard(dst *core.Screen, x, y int, c Card) int {
	if !c.FaceUp {
		return dst.DrawTextColored(x, y, "XX", core.ColorBlue)
	}
	color := core.ColorBrightWhite
	if c.Color() == Red {
		color = core.ColorBrightRed
	}
	return dst.DrawTextColored(x, y, c.String(), color)
}

func statusColor(won bool) core.Color {
	if won {
		return core.ColorGreen
	}
	return core.ColorYellow
}

func renderHelp(dst *core.Screen) {
	for i, line := range helpLines {
		if i == 0 {
			dst.DrawTextColored(0, i, line, core.ColorCyan)
			continue
		}
		dst.DrawText(0, i, line)
	}
	dst.DrawTextColored(0, len(helpLines)+1, "Type 'help' again to return to the board.", core.ColorGray)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// formatElapsed renders a duration as mm:ss; hours fold into the minutes.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
