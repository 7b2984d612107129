package klondike

import (
	"fmt"
	"strconv"
	"strings"
)

// Board dimensions.
const (
	TableauCount    = 7
	FoundationCount = 4
)

// Pile is an ordered stack of cards. Index 0 is the bottom; the last
// element is the top and the only position that can be taken from.
type Pile []Card

// Len returns the number of cards in the pile.
func (p Pile) Len() int {
	return len(p)
}

// Top returns the top card and true, or false if the pile is empty.
func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// Push places a card on top.
func (p *Pile) Push(c Card) {
	*p = append(*p, c)
}

// Pop removes and returns the top card. The pile must not be empty.
func (p *Pile) Pop() Card {
	old := *p
	c := old[len(old)-1]
	*p = old[:len(old)-1]
	return c
}

// Clone returns an independent copy.
func (p Pile) Clone() Pile {
	if p == nil {
		return nil
	}
	out := make(Pile, len(p))
	copy(out, p)
	return out
}

// PileKind tags a PileRef.
type PileKind uint8

const (
	KindStock PileKind = iota
	KindWaste
	KindTableau
	KindFoundation
)

// PileRef addresses one of the 13 piles on the board.
// Index is only meaningful for tableau (0..6) and foundation (0..3) piles.
type PileRef struct {
	Kind  PileKind
	Index int
}

// StockPile returns a reference to the stock.
func StockPile() PileRef { return PileRef{Kind: KindStock} }

// WastePile returns a reference to the waste.
func WastePile() PileRef { return PileRef{Kind: KindWaste} }

// TableauPile returns a reference to tableau column i (0-indexed).
func TableauPile(i int) PileRef { return PileRef{Kind: KindTableau, Index: i} }

// FoundationPile returns a reference to foundation i (0-indexed).
func FoundationPile(i int) PileRef { return PileRef{Kind: KindFoundation, Index: i} }

// Valid reports whether the reference names an existing pile.
func (r PileRef) Valid() bool {
	switch r.Kind {
	case KindStock, KindWaste:
		return r.Index == 0
	case KindTableau:
		return r.Index >= 0 && r.Index < TableauCount
	case KindFoundation:
		return r.Index >= 0 && r.Index < FoundationCount
	default:
		return false
	}
}

// String returns the board token for the pile ("S", "W", "T1".."T7", "F1".."F4").
func (r PileRef) String() string {
	switch r.Kind {
	case KindStock:
		return "S"
	case KindWaste:
		return "W"
	case KindTableau:
		return "T" + strconv.Itoa(r.Index+1)
	case KindFoundation:
		return "F" + strconv.Itoa(r.Index+1)
	default:
		return "?"
	}
}

// ParsePileRef resolves a board token such as "W", "t3" or "F1".
// Numbers in tokens are 1-based.
func ParsePileRef(token string) (PileRef, error) {
	tok := strings.ToUpper(strings.TrimSpace(token))
	if tok == "" {
		return PileRef{}, fmt.Errorf("%w: empty token", ErrInvalidPile)
	}

	var ref PileRef
	switch tok[0] {
	case 'S':
		ref.Kind = KindStock
	case 'W':
		ref.Kind = KindWaste
	case 'T':
		ref.Kind = KindTableau
	case 'F':
		ref.Kind = KindFoundation
	default:
		return PileRef{}, fmt.Errorf("%w: %q", ErrInvalidPile, token)
	}

	rest := tok[1:]
	switch ref.Kind {
	case KindStock, KindWaste:
		if rest != "" {
			return PileRef{}, fmt.Errorf("%w: %q", ErrInvalidPile, token)
		}
		return ref, nil
	}

	n, err := strconv.Atoi(rest)
	if err != nil || rest[0] == '+' || rest[0] == '-' {
		return PileRef{}, fmt.Errorf("%w: %q", ErrInvalidPile, token)
	}
	ref.Index = n - 1
	if !ref.Valid() {
		return PileRef{}, fmt.Errorf("%w: %q out of range", ErrInvalidPile, token)
	}
	return ref, nil
}
