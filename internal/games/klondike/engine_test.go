package klondike

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func up(s Suit, r Rank) Card   { return Card{Suit: s, Rank: r, FaceUp: true} }
func down(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

// fillStock puts every card the board is missing into the stock, face down.
func fillStock(b *Board) {
	var seen [DeckSize]bool
	mark := func(p Pile) {
		for _, c := range p {
			seen[c.index()] = true
		}
	}
	mark(b.Stock)
	mark(b.Waste)
	for _, p := range b.Tableau {
		mark(p)
	}
	for _, p := range b.Foundations {
		mark(p)
	}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			c := NewCard(suit, rank)
			if !seen[c.index()] {
				b.Stock.Push(c)
			}
		}
	}
}

// load replaces the game with s and makes it the new undo floor.
func (e *Engine) load(s State) {
	e.board = s.Board.Clone()
	e.score = s.Score
	e.moves = s.Moves
	e.history = NewHistory(s)
}

func newTestEngine(t *testing.T, drawCount int, b Board) *Engine {
	t.Helper()
	e, err := New(drawCount, WithSeed(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	fillStock(&b)
	e.load(State{Board: b})
	if err := e.Validate(); err != nil {
		t.Fatalf("test board invalid: %v", err)
	}
	return e
}

func TestNewDealShape(t *testing.T) {
	e, err := New(1, WithSeed(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	v := e.Snapshot()

	for i, col := range v.Tableau {
		if len(col) != i+1 {
			t.Errorf("T%d has %d cards, want %d", i+1, len(col), i+1)
		}
		for j, c := range col {
			if c.FaceUp != (j == len(col)-1) {
				t.Errorf("T%d card %d FaceUp = %v", i+1, j, c.FaceUp)
			}
		}
	}
	if len(v.Stock) != 24 {
		t.Errorf("stock has %d cards, want 24", len(v.Stock))
	}
	if len(v.Waste) != 0 {
		t.Errorf("waste has %d cards, want 0", len(v.Waste))
	}
	for i, f := range v.Foundations {
		if len(f) != 0 {
			t.Errorf("F%d has %d cards, want 0", i+1, len(f))
		}
	}
	if v.Score != 0 || v.Moves != 0 || v.Won || v.CanUndo {
		t.Errorf("fresh game view = %+v", v)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNewInvalidDrawCount(t *testing.T) {
	for _, n := range []int{0, 2, 4, -1} {
		if _, err := New(n); !errors.Is(err, ErrInvalidDrawCount) {
			t.Errorf("New(%d) error = %v, want ErrInvalidDrawCount", n, err)
		}
	}
}

func TestNewSeedDeterminism(t *testing.T) {
	a, _ := New(3, WithSeed(99))
	b, _ := New(3, WithRand(rand.New(rand.NewSource(99))))
	if !a.State().Equal(b.State()) {
		t.Error("same seed produced different deals")
	}
	c, _ := New(3, WithSeed(100))
	if a.State().Equal(c.State()) {
		t.Error("different seeds produced the same deal")
	}
}

func TestDrawOne(t *testing.T) {
	e, _ := New(1, WithSeed(5))
	top, _ := e.board.Stock.Top()

	res, err := e.Draw()
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if res.Drawn != 1 || res.Recycled {
		t.Errorf("Draw() = %+v, want 1 drawn without recycle", res)
	}
	got, _ := e.board.Waste.Top()
	top.FaceUp = true
	if got != top {
		t.Errorf("waste top = %v, want %v", got, top)
	}
	if len(e.board.Stock) != 23 {
		t.Errorf("stock has %d cards, want 23", len(e.board.Stock))
	}
	if e.Score() != 0 || e.Moves() != 1 {
		t.Errorf("score = %d moves = %d, want 0 and 1", e.Score(), e.Moves())
	}
}

func TestDrawThreeKeepsBlockOrder(t *testing.T) {
	e, _ := New(3, WithSeed(5))
	stock := e.board.Stock.Clone()
	want := stock[len(stock)-3:]

	res, err := e.Draw()
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if res.Drawn != 3 {
		t.Errorf("Drawn = %d, want 3", res.Drawn)
	}
	for i, c := range e.board.Waste {
		if !c.Same(want[i]) || !c.FaceUp {
			t.Errorf("waste[%d] = %+v, want %v face up", i, c, want[i])
		}
	}
	wasteTop, _ := e.board.Waste.Top()
	if !wasteTop.Same(stock[len(stock)-1]) {
		t.Errorf("waste top = %v, want former stock top %v", wasteTop, stock[len(stock)-1])
	}
}

func TestDrawThreeShortStock(t *testing.T) {
	var b Board
	b.Tableau[0] = Pile{up(Spades, King)}
	e := newTestEngine(t, 3, b)
	// keep two cards in the stock, the rest go to the waste
	for len(e.board.Stock) > 2 {
		c := e.board.Stock.Pop()
		c.FaceUp = true
		e.board.Waste.Push(c)
	}
	e.load(e.State())

	res, err := e.Draw()
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if res.Drawn != 2 || len(e.board.Stock) != 0 {
		t.Errorf("Draw() = %+v with %d left in stock, want 2 drawn and empty stock", res, len(e.board.Stock))
	}
}

func TestDrawRecyclesWaste(t *testing.T) {
	e, _ := New(1, WithSeed(8))
	for range 24 {
		if _, err := e.Draw(); err != nil {
			t.Fatalf("Draw() failed: %v", err)
		}
	}
	waste := e.board.Waste.Clone()

	res, err := e.Draw()
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if !res.Recycled || res.Drawn != 1 {
		t.Errorf("Draw() = %+v, want recycled and 1 drawn", res)
	}
	// waste bottom becomes the stock top, so it is drawn first
	if len(e.board.Waste) != 1 || !e.board.Waste[0].Same(waste[0]) {
		t.Errorf("waste = %v, want [%v]", e.board.Waste, waste[0])
	}
	if len(e.board.Stock) != 23 {
		t.Fatalf("stock has %d cards, want 23", len(e.board.Stock))
	}
	for i, c := range e.board.Stock {
		want := waste[len(waste)-1-i]
		if !c.Same(want) || c.FaceUp {
			t.Errorf("stock[%d] = %+v, want %v face down", i, c, want)
		}
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDrawEmptyStockAndWaste(t *testing.T) {
	var b Board
	for i, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			b.Foundations[i].Push(up(suit, rank))
		}
	}
	e := newTestEngine(t, 1, b)

	if _, err := e.Draw(); !errors.Is(err, ErrEmptyStockAndWaste) {
		t.Errorf("Draw() error = %v, want ErrEmptyStockAndWaste", err)
	}
	if e.Moves() != 0 || e.CanUndo() {
		t.Error("failed draw was recorded")
	}
}

func TestMoveScoringAndUndo(t *testing.T) {
	var b Board
	b.Waste = Pile{up(Hearts, 7)}
	b.Tableau[0] = Pile{down(Clubs, King), up(Spades, Ace)}
	b.Tableau[1] = Pile{up(Spades, 8)}
	e := newTestEngine(t, 1, b)

	res, err := e.Move(WastePile(), TableauPile(1))
	if err != nil {
		t.Fatalf("Move(W, T2) failed: %v", err)
	}
	if res.Points != 5 || res.Score != 5 || res.Revealed {
		t.Errorf("Move(W, T2) = %+v, want +5 to 5", res)
	}

	res, err = e.Move(TableauPile(0), FoundationPile(0))
	if err != nil {
		t.Fatalf("Move(T1, F1) failed: %v", err)
	}
	if res.Points != 15 || res.Score != 20 || !res.Revealed {
		t.Errorf("Move(T1, F1) = %+v, want +15 with reveal to 20", res)
	}
	top, _ := e.board.Tableau[0].Top()
	if top != up(Clubs, King) {
		t.Errorf("T1 top = %+v, want KC face up", top)
	}

	for _, want := range []int{5, 0} {
		score, err := e.Undo()
		if err != nil {
			t.Fatalf("Undo() failed: %v", err)
		}
		if score != want {
			t.Errorf("Undo() = %d, want %d", score, want)
		}
	}
	top, _ = e.board.Tableau[0].Top()
	if top != up(Spades, Ace) {
		t.Errorf("T1 top after undo = %+v, want AS", top)
	}
	if e.board.Tableau[0][0].FaceUp {
		t.Error("undo did not turn the revealed card back down")
	}
	if _, err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() at floor error = %v, want ErrNothingToUndo", err)
	}
}

func TestMoveCustomScoring(t *testing.T) {
	var b Board
	b.Waste = Pile{up(Hearts, Ace)}
	e := newTestEngine(t, 1, b)
	e.scoring = Scoring{Foundation: 3}

	res, err := e.Move(WastePile(), FoundationPile(2))
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if res.Points != 3 {
		t.Errorf("Points = %d, want 3", res.Points)
	}
}

func TestMoveErrors(t *testing.T) {
	var b Board
	b.Tableau[0] = Pile{up(Hearts, 9), up(Spades, 8)}
	b.Tableau[1] = Pile{up(Clubs, 10)}
	b.Tableau[2] = Pile{down(Diamonds, 4), up(Hearts, 2)}
	b.Foundations[0] = Pile{up(Diamonds, Ace)}

	tests := []struct {
		name     string
		src, dst PileRef
		err      error
	}{
		{"from stock", StockPile(), TableauPile(0), ErrInvalidPile},
		{"from foundation", FoundationPile(0), TableauPile(3), ErrInvalidPile},
		{"to waste", TableauPile(0), WastePile(), ErrInvalidPile},
		{"to stock", TableauPile(0), StockPile(), ErrInvalidPile},
		{"source out of range", TableauPile(7), TableauPile(0), ErrInvalidPile},
		{"destination out of range", TableauPile(0), FoundationPile(4), ErrInvalidPile},
		{"same pile", TableauPile(1), TableauPile(1), ErrNoOpMove},
		{"same waste", WastePile(), WastePile(), ErrNoOpMove},
		{"empty waste", WastePile(), TableauPile(0), ErrNoMovableCard},
		{"empty column", TableauPile(4), TableauPile(0), ErrNoMovableCard},
		{"sequence not movable", TableauPile(0), TableauPile(1), ErrIllegalMove},
		{"non-king to empty", TableauPile(1), TableauPile(5), ErrIllegalMove},
		{"foundation wrong suit", TableauPile(2), FoundationPile(0), ErrIllegalMove},
		{"foundation non-ace", TableauPile(2), FoundationPile(1), ErrIllegalMove},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, 1, b.Clone())
			before := e.State()

			_, err := e.Move(tc.src, tc.dst)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Move(%v, %v) error = %v, expected %v", tc.src, tc.dst, err, tc.err)
			}
			if !e.State().Equal(before) || e.CanUndo() {
				t.Error("failed move changed the game")
			}
		})
	}
}

func TestMoveKingToEmptyColumn(t *testing.T) {
	var b Board
	b.Tableau[0] = Pile{down(Hearts, 3), up(Spades, King)}
	e := newTestEngine(t, 1, b)

	res, err := e.Move(TableauPile(0), TableauPile(6))
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	// tableau to tableau earns only the reveal bonus
	if res.Points != 5 || !res.Revealed {
		t.Errorf("Move() = %+v, want reveal only", res)
	}
}

func TestWinDetection(t *testing.T) {
	var b Board
	for i, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			if suit == Spades && rank == King {
				continue
			}
			b.Foundations[i].Push(up(suit, rank))
		}
	}
	b.Waste = Pile{up(Spades, King)}
	e := newTestEngine(t, 1, b)

	if e.IsWon() {
		t.Fatal("IsWon() before the last card")
	}
	if _, err := e.Move(WastePile(), FoundationPile(2)); err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !e.IsWon() || !e.Snapshot().Won {
		t.Error("IsWon() = false after all 52 cards reached the foundations")
	}
	if e.Score() != 10 {
		t.Errorf("Score() = %d, want 10", e.Score())
	}
}

func TestElapsedSurvivesUndo(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	e, _ := New(1, WithSeed(3), WithClock(clock))

	now = now.Add(90 * time.Second)
	if _, err := e.Draw(); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if e.Elapsed() != 90*time.Second {
		t.Errorf("Elapsed() = %v, want 1m30s", e.Elapsed())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	e, _ := New(1, WithSeed(4))
	v := e.Snapshot()
	v.Tableau[6][6].FaceUp = false
	v.Stock = v.Stock[:0]

	if err := e.Validate(); err != nil {
		t.Errorf("mutating a View changed the engine: %v", err)
	}
}

// TestRandomPlay drives the engine with random actions and checks that card
// conservation holds throughout, failures never change the game and every
// success is exactly reverted by Undo.
func TestRandomPlay(t *testing.T) {
	for _, drawCount := range []int{1, 3} {
		e, _ := New(drawCount, WithSeed(int64(drawCount)*7))
		rng := rand.New(rand.NewSource(11))

		refs := []PileRef{StockPile(), WastePile()}
		for i := range TableauCount {
			refs = append(refs, TableauPile(i))
		}
		for i := range FoundationCount {
			refs = append(refs, FoundationPile(i))
		}

		for step := range 3000 {
			before := e.State()
			var err error
			undoing := false
			switch r := rng.Intn(10); {
			case r < 3:
				_, err = e.Draw()
			case r < 9:
				_, err = e.Move(refs[rng.Intn(len(refs))], refs[rng.Intn(len(refs))])
			default:
				undoing = true
				_, err = e.Undo()
			}

			if verr := e.Validate(); verr != nil {
				t.Fatalf("draw %d step %d: %v", drawCount, step, verr)
			}
			if err != nil {
				if !e.State().Equal(before) {
					t.Fatalf("draw %d step %d: failed action changed the game: %v", drawCount, step, err)
				}
				continue
			}
			if undoing {
				continue
			}

			after := e.State()
			if _, uerr := e.Undo(); uerr != nil {
				t.Fatalf("draw %d step %d: Undo() failed: %v", drawCount, step, uerr)
			}
			if !e.State().Equal(before) {
				t.Fatalf("draw %d step %d: Undo() did not restore the previous state", drawCount, step)
			}
			// replay the action by restoring the recorded state on top of history
			e.board = after.Board.Clone()
			e.score = after.Score
			e.moves = after.Moves
			e.history.Record(after)
		}
	}
}
