package klondike

// CanPlaceOnTableau reports whether card may land on the tableau pile dest.
// An empty column only takes a King; otherwise the card must be one rank
// lower than the top card and of the opposite color.
func CanPlaceOnTableau(card Card, dest Pile) bool {
	top, ok := dest.Top()
	if !ok {
		return card.Rank == King
	}
	return card.Color() != top.Color() && card.Rank+1 == top.Rank
}

// CanPlaceOnFoundation reports whether card may land on the foundation dest.
// An empty foundation only takes an Ace; otherwise the card must match the
// top card's suit and be one rank higher. The foundation's suit is whatever
// its Ace was, so no separate suit assignment is tracked.
func CanPlaceOnFoundation(card Card, dest Pile) bool {
	top, ok := dest.Top()
	if !ok {
		return card.Rank == Ace
	}
	return card.Suit == top.Suit && card.Rank == top.Rank+1
}
