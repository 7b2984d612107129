package klondike

import "fmt"

// Board holds all 13 piles.
type Board struct {
	Stock       Pile
	Waste       Pile
	Tableau     [TableauCount]Pile
	Foundations [FoundationCount]Pile
}

// Deal lays out a shuffled deck: tableau column i receives i+1 cards with
// only the last one face up, and the remaining 24 cards become the stock,
// face down, in deck order.
func Deal(deck []Card) Board {
	var b Board
	next := 0
	for i := range TableauCount {
		for j := 0; j <= i; j++ {
			c := deck[next]
			next++
			c.FaceUp = j == i
			b.Tableau[i].Push(c)
		}
	}

	b.Stock = make(Pile, 0, len(deck)-next)
	for _, c := range deck[next:] {
		c.FaceUp = false
		b.Stock.Push(c)
	}
	return b
}

// Pile returns a pointer to the referenced pile, or nil for an invalid ref.
func (b *Board) Pile(ref PileRef) *Pile {
	if !ref.Valid() {
		return nil
	}
	switch ref.Kind {
	case KindStock:
		return &b.Stock
	case KindWaste:
		return &b.Waste
	case KindTableau:
		return &b.Tableau[ref.Index]
	case KindFoundation:
		return &b.Foundations[ref.Index]
	}
	return nil
}

// Clone returns a deep copy sharing no storage with b.
func (b Board) Clone() Board {
	out := Board{
		Stock: b.Stock.Clone(),
		Waste: b.Waste.Clone(),
	}
	for i := range b.Tableau {
		out.Tableau[i] = b.Tableau[i].Clone()
	}
	for i := range b.Foundations {
		out.Foundations[i] = b.Foundations[i].Clone()
	}
	return out
}

// Equal reports whether both boards hold the same cards, in the same
// order and orientation, on every pile.
func (b Board) Equal(other Board) bool {
	if !pileEqual(b.Stock, other.Stock) || !pileEqual(b.Waste, other.Waste) {
		return false
	}
	for i := range b.Tableau {
		if !pileEqual(b.Tableau[i], other.Tableau[i]) {
			return false
		}
	}
	for i := range b.Foundations {
		if !pileEqual(b.Foundations[i], other.Foundations[i]) {
			return false
		}
	}
	return true
}

func pileEqual(a, b Pile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CardCount returns the number of cards across all piles.
func (b *Board) CardCount() int {
	n := len(b.Stock) + len(b.Waste)
	for _, p := range b.Tableau {
		n += len(p)
	}
	n += b.FoundationCount()
	return n
}

// FoundationCount returns the number of cards on the foundations.
func (b *Board) FoundationCount() int {
	n := 0
	for _, p := range b.Foundations {
		n += len(p)
	}
	return n
}

// Validate checks the board invariants: 52 distinct cards, every tableau
// column has its face-up cards as a suffix, stock face down, waste and
// foundations face up. A non-nil error means the engine has a bug.
func (b *Board) Validate() error {
	var seen [DeckSize]bool
	count := 0
	check := func(name string, p Pile) error {
		for _, c := range p {
			if !c.valid() {
				return fmt.Errorf("klondike: %s holds invalid card %+v", name, c)
			}
			if seen[c.index()] {
				return fmt.Errorf("klondike: duplicate card %s in %s", c, name)
			}
			seen[c.index()] = true
			count++
		}
		return nil
	}

	if err := check("stock", b.Stock); err != nil {
		return err
	}
	if err := check("waste", b.Waste); err != nil {
		return err
	}
	for i, p := range b.Tableau {
		if err := check(TableauPile(i).String(), p); err != nil {
			return err
		}
	}
	for i, p := range b.Foundations {
		if err := check(FoundationPile(i).String(), p); err != nil {
			return err
		}
	}
	if count != DeckSize {
		return fmt.Errorf("klondike: board holds %d cards, want %d", count, DeckSize)
	}

	for _, c := range b.Stock {
		if c.FaceUp {
			return fmt.Errorf("klondike: face-up card %s in stock", c)
		}
	}
	for _, c := range b.Waste {
		if !c.FaceUp {
			return fmt.Errorf("klondike: face-down card %s in waste", c)
		}
	}
	for i, p := range b.Foundations {
		for _, c := range p {
			if !c.FaceUp {
				return fmt.Errorf("klondike: face-down card %s in %s", c, FoundationPile(i))
			}
		}
	}
	for i, p := range b.Tableau {
		faceUp := false
		for _, c := range p {
			if faceUp && !c.FaceUp {
				return fmt.Errorf("klondike: face-down card %s above face-up cards in %s", c, TableauPile(i))
			}
			faceUp = faceUp || c.FaceUp
		}
		if top, ok := p.Top(); ok && !top.FaceUp {
			return fmt.Errorf("klondike: face-down top card in %s", TableauPile(i))
		}
	}
	return nil
}
