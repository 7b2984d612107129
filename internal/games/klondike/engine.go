package klondike

import (
	"fmt"
	"math/rand"
	"time"
)

// Scoring holds the points awarded for each kind of successful action.
type Scoring struct {
	Foundation     int // any card landing on a foundation
	WasteToTableau int // waste card played onto the tableau
	Reveal         int // face-down tableau card turned up after a move
}

// DefaultScoring returns the standard point values.
func DefaultScoring() Scoring {
	return Scoring{
		Foundation:     10,
		WasteToTableau: 5,
		Reveal:         5,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to shuffle the deck.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed shuffles the deck from a fixed seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces time.Now for the elapsed-time counter.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithScoring overrides the point values.
func WithScoring(s Scoring) Option {
	return func(e *Engine) {
		e.scoring = s
	}
}

// Engine owns one game of Klondike: the board, the score and the undo
// history. It is not safe for concurrent use; every call runs to
// completion and either commits a snapshot or leaves the game untouched.
type Engine struct {
	drawCount int
	scoring   Scoring
	rng       *rand.Rand
	now       func() time.Time
	started   time.Time

	board   Board
	score   int
	moves   int
	history *History
}

// New shuffles a deck, deals it and records the initial snapshot.
// drawCount must be 1 or 3 and is fixed for the life of the game.
func New(drawCount int, opts ...Option) (*Engine, error) {
	if drawCount != 1 && drawCount != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDrawCount, drawCount)
	}

	e := &Engine{
		drawCount: drawCount,
		scoring:   DefaultScoring(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.board = Deal(NewDeck(e.rng))
	e.started = e.now()
	e.history = NewHistory(e.state())
	return e, nil
}

func (e *Engine) state() State {
	return State{Board: e.board, Score: e.score, Moves: e.moves}
}

// commit counts the action and records a snapshot of the new state.
func (e *Engine) commit() {
	e.moves++
	e.history.Record(e.state())
}

// DrawResult describes a successful draw.
type DrawResult struct {
	Drawn    int  // cards moved to the waste
	Recycled bool // the waste was turned over into the stock first
}

// Draw moves up to the draw count from the stock to the waste, face up.
// The drawn block keeps its order, so the card that was on top of the
// stock ends on top of the waste. An empty stock is refilled from the
// waste first.
func (e *Engine) Draw() (DrawResult, error) {
	var res DrawResult
	if len(e.board.Stock) == 0 {
		if len(e.board.Waste) == 0 {
			return res, ErrEmptyStockAndWaste
		}
		e.recycle()
		res.Recycled = true
	}

	stock := e.board.Stock
	n := min(e.drawCount, len(stock))
	block := stock[len(stock)-n:]
	for _, c := range block {
		c.FaceUp = true
		e.board.Waste.Push(c)
	}
	e.board.Stock = stock[:len(stock)-n]
	res.Drawn = n

	e.commit()
	return res, nil
}

// recycle turns the waste over into the stock: the waste's top card
// becomes the stock's bottom card and every card goes face down.
func (e *Engine) recycle() {
	waste := e.board.Waste
	stock := make(Pile, len(waste))
	for i, c := range waste {
		c.FaceUp = false
		stock[len(waste)-1-i] = c
	}
	e.board.Stock = stock
	e.board.Waste = nil
}

// MoveResult describes a successful move.
type MoveResult struct {
	Card     Card
	From     PileRef
	To       PileRef
	Points   int  // points earned by this move, including any reveal bonus
	Revealed bool // a face-down card was turned up on the source column
	Score    int  // running score after the move
}

// Move plays the top face-up card of src onto dst. Sources are the waste
// and tableau columns; destinations are tableau columns and foundations.
func (e *Engine) Move(src, dst PileRef) (MoveResult, error) {
	if !src.Valid() {
		return MoveResult{}, fmt.Errorf("%w: source %+v", ErrInvalidPile, src)
	}
	if !dst.Valid() {
		return MoveResult{}, fmt.Errorf("%w: destination %+v", ErrInvalidPile, dst)
	}
	if src == dst {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrNoOpMove, src)
	}
	if src.Kind != KindWaste && src.Kind != KindTableau {
		return MoveResult{}, fmt.Errorf("%w: cannot move from %s", ErrInvalidPile, src)
	}
	if dst.Kind != KindTableau && dst.Kind != KindFoundation {
		return MoveResult{}, fmt.Errorf("%w: cannot move to %s", ErrInvalidPile, dst)
	}

	from := e.board.Pile(src)
	card, ok := from.Top()
	if !ok || !card.FaceUp {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrNoMovableCard, src)
	}

	to := e.board.Pile(dst)
	var legal bool
	if dst.Kind == KindFoundation {
		legal = CanPlaceOnFoundation(card, *to)
	} else {
		legal = CanPlaceOnTableau(card, *to)
	}
	if !legal {
		return MoveResult{}, fmt.Errorf("%w: %s cannot go on %s", ErrIllegalMove, card, dst)
	}

	from.Pop()
	to.Push(card)

	res := MoveResult{Card: card, From: src, To: dst}
	switch {
	case dst.Kind == KindFoundation:
		res.Points += e.scoring.Foundation
	case src.Kind == KindWaste:
		res.Points += e.scoring.WasteToTableau
	}

	if src.Kind == KindTableau && len(*from) > 0 {
		top := &(*from)[len(*from)-1]
		if !top.FaceUp {
			top.FaceUp = true
			res.Points += e.scoring.Reveal
			res.Revealed = true
		}
	}

	e.score += res.Points
	res.Score = e.score
	e.commit()
	return res, nil
}

// Undo restores the state before the last successful draw or move and
// returns the restored score. The initial deal cannot be undone.
func (e *Engine) Undo() (int, error) {
	s, ok := e.history.Undo()
	if !ok {
		return e.score, ErrNothingToUndo
	}
	e.board = s.Board
	e.score = s.Score
	e.moves = s.Moves
	return e.score, nil
}

// IsWon reports whether all 52 cards are on the foundations.
func (e *Engine) IsWon() bool {
	return e.board.FoundationCount() == DeckSize
}

// CanUndo reports whether there is an action to undo.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of successful draws and moves still in history.
func (e *Engine) Moves() int {
	return e.moves
}

// DrawCount returns the draw mode (1 or 3).
func (e *Engine) DrawCount() int {
	return e.drawCount
}

// Elapsed returns wall time since the deal. Undo does not affect it.
func (e *Engine) Elapsed() time.Duration {
	return e.now().Sub(e.started)
}

// State returns a deep copy of the current undo unit.
func (e *Engine) State() State {
	return e.state().Clone()
}

// Validate checks the board invariants.
func (e *Engine) Validate() error {
	return e.board.Validate()
}

// View is a read-only copy of the game for display.
type View struct {
	Stock       Pile
	Waste       Pile
	Tableau     [TableauCount]Pile
	Foundations [FoundationCount]Pile
	Score       int
	Moves       int
	DrawCount   int
	Elapsed     time.Duration
	Won         bool
	CanUndo     bool
}

// Snapshot returns a View that shares no storage with the engine.
func (e *Engine) Snapshot() View {
	b := e.board.Clone()
	return View{
		Stock:       b.Stock,
		Waste:       b.Waste,
		Tableau:     b.Tableau,
		Foundations: b.Foundations,
		Score:       e.score,
		Moves:       e.moves,
		DrawCount:   e.drawCount,
		Elapsed:     e.Elapsed(),
		Won:         e.IsWon(),
		CanUndo:     e.CanUndo(),
	}
}
