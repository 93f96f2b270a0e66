// Package deck provides the shuffled 52-card deck the board is dealt from.
package deck

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/matt-harvey/king-albert/game/engine"
)

// Deck holds all 52 distinct (suit, rank) combinations in shuffled order. It
// is consumed exactly once, during board construction.
type Deck struct {
	cards []engine.Card
	seed  int64
}

// New builds a full deck and shuffles it with the given seed. A zero seed
// selects a time-based one, giving a fresh game per run.
func New(seed int64) *Deck {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	cards := make([]engine.Card, 0, engine.DeckSize)
	for rank := engine.MinRank; rank <= engine.MaxRank; rank++ {
		for _, suit := range engine.Suits {
			cards = append(cards, engine.Card{Suit: suit, Rank: rank})
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{cards: cards, seed: seed}
}

// Seed returns the seed the deck was shuffled with, so a deal can be
// reproduced.
func (d *Deck) Seed() int64 {
	return d.seed
}

// Deal returns the card at position i. Positions outside the deck are a
// caller bug.
func (d *Deck) Deal(i int) engine.Card {
	if i < 0 || i >= len(d.cards) {
		panic(fmt.Sprintf("deal position %d outside deck", i))
	}
	return d.cards[i]
}

// Cards returns a copy of the full shuffled sequence, in deal order.
func (d *Deck) Cards() []engine.Card {
	out := make([]engine.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}
