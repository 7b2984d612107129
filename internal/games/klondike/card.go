// Package klondike implements the Klondike solitaire game engine: piles,
// move legality, the stock/waste cycle, scoring and snapshot-based undo.
// The engine itself is pure; rendering onto a core.Screen lives alongside
// it the same way the other games do.
package klondike

import "strconv"

// Suit is one of the four French suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in deck construction order.
var Suits = [4]Suit{Hearts, Diamonds, Spades, Clubs}

// String returns the full suit name.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// Letter returns the one-letter suit code used on the board (H, D, S, C).
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Color returns the suit color.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color is the card color derived from the suit.
type Color uint8

const (
	Red Color = iota
	Black
)

// String returns "Red" or "Black".
func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Rank is the card rank, Ace=1 through King=13.
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the rank label (A, 2..10, J, Q, K).
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r > Ace && r < Jack {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is a playing card. Suit and Rank form its identity; FaceUp is the
// only field that changes during play.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard returns a face-down card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Color returns the card color.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Same reports whether two cards have the same identity, ignoring orientation.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// String returns the card label regardless of orientation, e.g. "10H" or "KS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// index maps a card to 0..51, used for duplicate detection.
func (c Card) index() int {
	return int(c.Suit)*13 + int(c.Rank) - 1
}

func (c Card) valid() bool {
	return c.Suit <= Clubs && c.Rank >= Ace && c.Rank <= King
}
