package engine

import "fmt"

const (
	NumColumns     = 9
	NumSpotsInHand = 7
	DeckSize       = 52

	// Label partition. Every board location is addressed by a single
	// character: a-d foundations, e-m columns, n-t hand cells.
	FirstFoundationLabel = 'a'
	LastFoundationLabel  = 'd'
	FirstColumnLabel     = 'e'
	LastColumnLabel      = 'm'
	FirstHandLabel       = 'n'
	LastHandLabel        = 't'
)

// Board is the fixed aggregate of four foundations, nine columns and seven
// hand cells. It is constructed once per game from a dealt deck and mutated
// only through Execute.
type Board struct {
	foundations [NumSuits]*Foundation
	columns     [NumColumns]*Column
	hand        [NumSpotsInHand]*SpotInHand
}

// NewBoard deals cards onto a fresh board: column i receives i cards for
// i = 1..9 (45 cards), then the remaining 7 cards fill the hand cells one
// each, in order. The sequence must hold exactly 52 cards.
func NewBoard(cards []Card) (*Board, error) {
	if len(cards) != DeckSize {
		return nil, fmt.Errorf("board needs %d cards, got %d", DeckSize, len(cards))
	}

	b := &Board{}
	for i, suit := range Suits {
		b.foundations[i] = NewFoundation(suit)
	}

	next := 0
	for i := 0; i < NumColumns; i++ {
		column := NewColumn(i + 6)
		for j := 0; j <= i; j++ {
			column.Receive(cards[next])
			next++
		}
		b.columns[i] = column
	}

	for i := 0; i < NumSpotsInHand; i++ {
		b.hand[i] = NewSpotInHand(cards[next])
		next++
	}

	return b, nil
}

// locationAt resolves a label to its location. Labels outside a-t are a
// caller contract violation; raw input must be validated before it reaches
// the board.
func (b *Board) locationAt(label byte) Location {
	switch {
	case label >= FirstFoundationLabel && label <= LastFoundationLabel:
		return b.foundations[label-FirstFoundationLabel]
	case label >= FirstColumnLabel && label <= LastColumnLabel:
		return b.columns[label-FirstColumnLabel]
	case label >= FirstHandLabel && label <= LastHandLabel:
		return b.hand[label-FirstHandLabel]
	default:
		panic(fmt.Sprintf("label %q outside range a-t", label))
	}
}

// Permits reports whether the movement is legal: the origin must have an
// active card, be willing to give it, and the destination must accept it.
func (b *Board) Permits(m Movement) bool {
	origin := b.locationAt(m.Origin)
	destination := b.locationAt(m.Destination)
	card, ok := origin.ActiveCard()
	if !ok {
		return false
	}
	return origin.CanGiveCard() && destination.CanReceive(card)
}

// Execute transfers the origin's active card to the destination as a single
// indivisible step. The movement must satisfy Permits; an illegal movement is
// a caller contract violation and panics rather than leaving the board in a
// half-applied state.
func (b *Board) Execute(m Movement) {
	if !b.Permits(m) {
		panic(fmt.Sprintf("execute of movement %s not permitted", m))
	}
	card := b.locationAt(m.Origin).GiveCard()
	b.locationAt(m.Destination).Receive(card)
}

// PermittedMoves enumerates every legal movement. Origins never include
// foundations and destinations never include hand cells, because normal play
// never moves a card off a foundation or onto a hand cell: 16 origins by 13
// destinations, each checked in constant time.
func (b *Board) PermittedMoves() []Movement {
	var moves []Movement
	for origin := byte(FirstColumnLabel); origin <= LastHandLabel; origin++ {
		loc := b.locationAt(origin)
		card, ok := loc.ActiveCard()
		if !ok || !loc.CanGiveCard() {
			continue
		}
		for destination := byte(FirstFoundationLabel); destination <= LastColumnLabel; destination++ {
			if b.locationAt(destination).CanReceive(card) {
				moves = append(moves, Movement{Origin: origin, Destination: destination})
			}
		}
	}
	return moves
}

// VictoryState returns Won when every foundation has been filled to the king.
func (b *Board) VictoryState() VictoryState {
	for _, f := range b.foundations {
		if f.topRank != MaxRank {
			return Ongoing
		}
	}
	return Won
}
