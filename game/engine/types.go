package engine

import "fmt"

// Color is the color of a suit: two suits are black, two are red.
type Color int

const (
	Black Color = iota
	Red
)

// Suit identifies one of the four card suits. The order matters: it is the
// order in which foundations are laid out on the board (labels a through d).
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs

	NumSuits = 4
)

// Suits lists all suits in board order.
var Suits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// Color returns the color of the suit.
func (s Suit) Color() Color {
	switch s {
	case Spades, Clubs:
		return Black
	default:
		return Red
	}
}

// String returns the suit glyph used on the rendered board.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// letter returns a single-letter ASCII fallback for terminals without the
// suit glyphs.
func (s Suit) letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank is a card rank from 1 (ace) to 13 (king).
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 13
)

// Card is an immutable (suit, rank) value. Cards carry no identity beyond the
// pair; the deck guarantees each combination appears exactly once.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Color returns the color of the card's suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String renders the card as a fixed-width 3-character cell.
func (c Card) String() string {
	return c.cell(false)
}

func (c Card) cell(ascii bool) string {
	suit := c.Suit.String()
	if ascii {
		suit = c.Suit.letter()
	}
	switch {
	case c.Rank == 1:
		return " A" + suit
	case c.Rank >= 2 && c.Rank <= 9:
		return fmt.Sprintf(" %d%s", c.Rank, suit)
	case c.Rank == 10:
		return "10" + suit
	case c.Rank == 11:
		return " J" + suit
	case c.Rank == 12:
		return " Q" + suit
	case c.Rank == 13:
		return " K" + suit
	default:
		panic(fmt.Sprintf("card has rank %d outside 1-13", c.Rank))
	}
}

// Movement is a proposed transfer of the origin's active card to the
// destination. It carries labels only; the card is derived from the origin at
// validation and execution time.
type Movement struct {
	Origin      byte
	Destination byte
}

// String renders the movement as its two labels, e.g. "ea" for e to a.
func (m Movement) String() string {
	return string([]byte{m.Origin, m.Destination})
}

// VictoryState reports whether the game has been won.
type VictoryState int

const (
	Ongoing VictoryState = iota
	Won
)

func (v VictoryState) String() string {
	if v == Won {
		return "won"
	}
	return "ongoing"
}
