package klondike

import "testing"

func TestCanPlaceOnTableau(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		dest     Pile
		expected bool
	}{
		{"king on empty", up(Clubs, King), nil, true},
		{"queen on empty", up(Hearts, Queen), nil, false},
		{"red on black one lower", up(Hearts, 9), Pile{up(Spades, 10)}, true},
		{"black on red one lower", up(Clubs, 6), Pile{up(Diamonds, 7)}, true},
		{"same color", up(Hearts, 9), Pile{up(Diamonds, 10)}, false},
		{"two lower", up(Hearts, 8), Pile{up(Spades, 10)}, false},
		{"one higher", up(Hearts, Jack), Pile{up(Spades, 10)}, false},
		{"ace on two", up(Diamonds, Ace), Pile{up(Clubs, 2)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlaceOnTableau(tc.card, tc.dest); got != tc.expected {
				t.Errorf("CanPlaceOnTableau(%v, %v) = %v, expected %v", tc.card, tc.dest, got, tc.expected)
			}
		})
	}
}

func TestCanPlaceOnFoundation(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		dest     Pile
		expected bool
	}{
		{"ace on empty", up(Spades, Ace), nil, true},
		{"two on empty", up(Spades, 2), nil, false},
		{"same suit next", up(Spades, 2), Pile{up(Spades, Ace)}, true},
		{"other suit next", up(Clubs, 2), Pile{up(Spades, Ace)}, false},
		{"same suit skip", up(Spades, 3), Pile{up(Spades, Ace)}, false},
		{"king on queen", up(Hearts, King), Pile{up(Hearts, Queen)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlaceOnFoundation(tc.card, tc.dest); got != tc.expected {
				t.Errorf("CanPlaceOnFoundation(%v, %v) = %v, expected %v", tc.card, tc.dest, got, tc.expected)
			}
		})
	}
}
