package engine

import "testing"

func TestFoundation_AcceptanceLaw(t *testing.T) {
	f := NewFoundation(Spades)

	// Empty: only the ace of its own suit.
	if !f.CanReceive(Card{Suit: Spades, Rank: 1}) {
		t.Error("Expected empty foundation to accept the ace of its suit")
	}
	if f.CanReceive(Card{Suit: Hearts, Rank: 1}) {
		t.Error("Expected empty foundation to reject an ace of another suit")
	}
	if f.CanReceive(Card{Suit: Spades, Rank: 2}) {
		t.Error("Expected empty foundation to reject a rank above the ace")
	}

	// Build up 1..13 in strict order; at each step only top+1 of the suit
	// is accepted.
	for rank := MinRank; rank <= MaxRank; rank++ {
		if !f.CanReceive(Card{Suit: Spades, Rank: rank}) {
			t.Fatalf("Expected foundation at %d to accept rank %d", rank-1, rank)
		}
		if f.CanReceive(Card{Suit: Spades, Rank: rank + 1}) {
			t.Errorf("Expected foundation at %d to reject rank %d", rank-1, rank+1)
		}
		if f.CanReceive(Card{Suit: Clubs, Rank: rank}) {
			t.Errorf("Expected foundation to reject rank %d of the wrong suit", rank)
		}
		f.Receive(Card{Suit: Spades, Rank: rank})

		active, ok := f.ActiveCard()
		if !ok {
			t.Fatalf("Expected active card after receiving rank %d", rank)
		}
		if active != (Card{Suit: Spades, Rank: rank}) {
			t.Errorf("Expected active card rank %d, got %v", rank, active)
		}
	}

	// Full foundation accepts nothing further.
	if f.CanReceive(Card{Suit: Spades, Rank: 13}) {
		t.Error("Expected full foundation to reject another king")
	}
}

func TestFoundation_GiveGateAlwaysClosed(t *testing.T) {
	f := NewFoundation(Hearts)
	if f.CanGiveCard() {
		t.Error("Expected empty foundation's give gate to be closed")
	}
	f.Receive(Card{Suit: Hearts, Rank: 1})
	if f.CanGiveCard() {
		t.Error("Expected occupied foundation's give gate to stay closed")
	}
}

// GiveCard is unreachable through the board's gated path but remains a
// working operation for direct callers: it pops the top card and exposes the
// one beneath.
func TestFoundation_GiveCardDirect(t *testing.T) {
	f := NewFoundation(Diamonds)
	f.Receive(Card{Suit: Diamonds, Rank: 1})
	f.Receive(Card{Suit: Diamonds, Rank: 2})

	card := f.GiveCard()
	if card != (Card{Suit: Diamonds, Rank: 2}) {
		t.Errorf("Expected to remove the 2 of diamonds, got %v", card)
	}
	active, ok := f.ActiveCard()
	if !ok || active.Rank != 1 {
		t.Errorf("Expected the ace to be exposed, got %v (ok=%v)", active, ok)
	}
}

func TestFoundation_GiveCardEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic giving from an empty foundation")
		}
	}()
	NewFoundation(Spades).GiveCard()
}

func TestColumn_AcceptanceLaw(t *testing.T) {
	column := NewColumn(4)

	// Empty column accepts anything.
	if !column.CanReceive(Card{Suit: Clubs, Rank: 13}) {
		t.Error("Expected empty column to accept a king")
	}
	if !column.CanReceive(Card{Suit: Hearts, Rank: 5}) {
		t.Error("Expected empty column to accept a mid-rank card")
	}

	column.Receive(Card{Suit: Spades, Rank: 9}) // black 9 active

	tests := []struct {
		name     string
		card     Card
		expected bool
	}{
		{"opposite color, one lower", Card{Suit: Hearts, Rank: 8}, true},
		{"opposite color, one lower (other red suit)", Card{Suit: Diamonds, Rank: 8}, true},
		{"same color, one lower", Card{Suit: Clubs, Rank: 8}, false},
		{"opposite color, same rank", Card{Suit: Hearts, Rank: 9}, false},
		{"opposite color, two lower", Card{Suit: Hearts, Rank: 7}, false},
		{"opposite color, one higher", Card{Suit: Hearts, Rank: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := column.CanReceive(tt.card); got != tt.expected {
				t.Errorf("Expected CanReceive(%v) = %v, got %v", tt.card, tt.expected, got)
			}
		})
	}
}

func TestColumn_GiveAndActive(t *testing.T) {
	column := NewColumn(4)
	if column.CanGiveCard() {
		t.Error("Expected empty column's give gate to be closed")
	}
	if _, ok := column.ActiveCard(); ok {
		t.Error("Expected no active card on empty column")
	}

	column.Receive(Card{Suit: Spades, Rank: 7})
	column.Receive(Card{Suit: Hearts, Rank: 6})

	active, ok := column.ActiveCard()
	if !ok || active != (Card{Suit: Hearts, Rank: 6}) {
		t.Errorf("Expected the last card to be active, got %v (ok=%v)", active, ok)
	}

	card := column.GiveCard()
	if card != (Card{Suit: Hearts, Rank: 6}) {
		t.Errorf("Expected to give the last card, got %v", card)
	}
	if column.Len() != 1 {
		t.Errorf("Expected 1 card left, got %d", column.Len())
	}
}

func TestColumn_GiveCardEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic giving from an empty column")
		}
	}()
	NewColumn(0).GiveCard()
}

func TestSpotInHand_Law(t *testing.T) {
	spot := NewSpotInHand(Card{Suit: Clubs, Rank: 4})

	// Never accepts a card, in any state.
	if spot.CanReceive(Card{Suit: Hearts, Rank: 3}) {
		t.Error("Expected occupied hand cell to refuse every card")
	}
	if !spot.CanGiveCard() {
		t.Error("Expected occupied hand cell's give gate to be open")
	}

	card := spot.GiveCard()
	if card != (Card{Suit: Clubs, Rank: 4}) {
		t.Errorf("Expected the stored card, got %v", card)
	}

	// Once emptied it stays empty: no active card, gate closed, still
	// refusing everything.
	if _, ok := spot.ActiveCard(); ok {
		t.Error("Expected no active card after giving")
	}
	if spot.CanGiveCard() {
		t.Error("Expected give gate to close permanently after giving")
	}
	if spot.CanReceive(Card{Suit: Clubs, Rank: 4}) {
		t.Error("Expected empty hand cell to refuse every card")
	}
}

func TestSpotInHand_GiveCardEmptyPanics(t *testing.T) {
	spot := NewSpotInHand(Card{Suit: Spades, Rank: 2})
	spot.GiveCard()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic giving from an empty hand cell")
		}
	}()
	spot.GiveCard()
}
