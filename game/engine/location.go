package engine

// Location is the capability contract shared by every place a card can sit on
// the board. Exactly three implementations exist: Foundation, Column and
// SpotInHand. ActiveCard is the single card currently exposed for comparison
// or removal.
//
// CanGiveCard is the sole gate controlling whether a location's card may be
// removed. The Board checks it before every GiveCard call; calling GiveCard
// on a location whose gate is closed is a caller bug and panics.
type Location interface {
	CanReceive(card Card) bool
	Receive(card Card)
	CanGiveCard() bool
	GiveCard() Card
	ActiveCard() (Card, bool)
}

// Foundation is a per-suit ascending pile. It must be filled ace to king in
// strict order; all four foundations at king is the win condition. Its state
// is just the top rank, zero meaning empty.
type Foundation struct {
	suit    Suit
	topRank Rank
}

// NewFoundation returns an empty foundation for the given suit.
func NewFoundation(suit Suit) *Foundation {
	return &Foundation{suit: suit}
}

// Suit returns the suit this foundation collects.
func (f *Foundation) Suit() Suit {
	return f.suit
}

func (f *Foundation) nextRank() Rank {
	return f.topRank + 1
}

// CanReceive reports whether card is the next card of this foundation's suit.
func (f *Foundation) CanReceive(card Card) bool {
	return card.Suit == f.suit && card.Rank == f.nextRank()
}

// Receive places card on top of the pile.
func (f *Foundation) Receive(card Card) {
	f.topRank = card.Rank
}

// CanGiveCard is always false: no rule path ever takes a card back off a
// foundation. GiveCard stays implemented for direct callers but is
// unreachable through the gated Board operations.
func (f *Foundation) CanGiveCard() bool {
	return false
}

// GiveCard removes and returns the top card. Panics if the foundation is
// empty.
func (f *Foundation) GiveCard() Card {
	if f.topRank == 0 {
		panic("GiveCard on empty foundation")
	}
	card := Card{Suit: f.suit, Rank: f.topRank}
	f.topRank--
	return card
}

// ActiveCard returns the top card, if any.
func (f *Foundation) ActiveCard() (Card, bool) {
	if f.topRank == 0 {
		return Card{}, false
	}
	return Card{Suit: f.suit, Rank: f.topRank}, true
}

// Column is a tableau pile. Only the last card is ever touched. A card is
// accepted when the column is empty, or when it is one rank below the active
// card and of the opposite color. The invariant is enforced only at the
// moment of acceptance, never re-validated.
type Column struct {
	cards []Card
}

// NewColumn returns an empty column with room for the given number of cards.
func NewColumn(capacity int) *Column {
	return &Column{cards: make([]Card, 0, capacity)}
}

// Len returns the number of cards in the column.
func (c *Column) Len() int {
	return len(c.cards)
}

// CardAt returns the card at position i from the top of the deal, if present.
func (c *Column) CardAt(i int) (Card, bool) {
	if i < 0 || i >= len(c.cards) {
		return Card{}, false
	}
	return c.cards[i], true
}

// CanReceive reports whether card may be appended to the column.
func (c *Column) CanReceive(card Card) bool {
	active, ok := c.ActiveCard()
	if !ok {
		return true
	}
	return active.Color() != card.Color() && active.Rank == card.Rank+1
}

// Receive appends card to the column.
func (c *Column) Receive(card Card) {
	c.cards = append(c.cards, card)
}

// CanGiveCard reports whether the column has a card to give.
func (c *Column) CanGiveCard() bool {
	return len(c.cards) > 0
}

// GiveCard removes and returns the last card. Panics if the column is empty.
func (c *Column) GiveCard() Card {
	if len(c.cards) == 0 {
		panic("GiveCard on empty column")
	}
	card := c.cards[len(c.cards)-1]
	c.cards = c.cards[:len(c.cards)-1]
	return card
}

// ActiveCard returns the last card, if any.
func (c *Column) ActiveCard() (Card, bool) {
	if len(c.cards) == 0 {
		return Card{}, false
	}
	return c.cards[len(c.cards)-1], true
}

// SpotInHand is a single-card staging cell. It is a source only: CanReceive
// is always false, so once its card is given away normal play never refills
// it.
type SpotInHand struct {
	card     Card
	occupied bool
}

// NewSpotInHand returns a hand cell holding the given card.
func NewSpotInHand(card Card) *SpotInHand {
	return &SpotInHand{card: card, occupied: true}
}

// CanReceive is always false for hand cells.
func (s *SpotInHand) CanReceive(Card) bool {
	return false
}

// Receive stores card in the cell, overwriting any occupant. Unreachable
// through the gated Board operations.
func (s *SpotInHand) Receive(card Card) {
	s.card = card
	s.occupied = true
}

// CanGiveCard reports whether the cell is occupied.
func (s *SpotInHand) CanGiveCard() bool {
	return s.occupied
}

// GiveCard removes and returns the stored card, leaving the cell empty.
// Panics if the cell is empty.
func (s *SpotInHand) GiveCard() Card {
	if !s.occupied {
		panic("GiveCard on empty hand cell")
	}
	s.occupied = false
	return s.card
}

// ActiveCard returns the stored card, if any.
func (s *SpotInHand) ActiveCard() (Card, bool) {
	if !s.occupied {
		return Card{}, false
	}
	return s.card, true
}
