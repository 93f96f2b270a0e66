package engine

import "strings"

// BoardState is a structured, serializable view of the board for the service
// and transport layers. Cards are rendered as trimmed strings ("A♠", "10♡");
// empty cells are empty strings.
type BoardState struct {
	Foundations []FoundationState `json:"foundations"`
	Columns     []ColumnState     `json:"columns"`
	Hand        []HandState       `json:"hand"`
	Victory     bool              `json:"victory"`
}

// FoundationState describes one foundation pile.
type FoundationState struct {
	Label   string `json:"label"`
	Suit    string `json:"suit"`
	TopRank int    `json:"top_rank"`
	Card    string `json:"card,omitempty"`
}

// ColumnState describes one tableau column, cards in deal order.
type ColumnState struct {
	Label string   `json:"label"`
	Cards []string `json:"cards"`
}

// HandState describes one hand cell.
type HandState struct {
	Label string `json:"label"`
	Card  string `json:"card,omitempty"`
}

// Snapshot captures the current board as a BoardState.
func (b *Board) Snapshot() *BoardState {
	state := &BoardState{
		Foundations: make([]FoundationState, 0, NumSuits),
		Columns:     make([]ColumnState, 0, NumColumns),
		Hand:        make([]HandState, 0, NumSpotsInHand),
		Victory:     b.VictoryState() == Won,
	}

	for i, f := range b.foundations {
		fs := FoundationState{
			Label:   string(rune(FirstFoundationLabel + i)),
			Suit:    f.suit.String(),
			TopRank: int(f.topRank),
		}
		if card, ok := f.ActiveCard(); ok {
			fs.Card = cardLabel(card)
		}
		state.Foundations = append(state.Foundations, fs)
	}

	for i, c := range b.columns {
		cs := ColumnState{
			Label: string(rune(FirstColumnLabel + i)),
			Cards: make([]string, 0, c.Len()),
		}
		for j := 0; j < c.Len(); j++ {
			card, _ := c.CardAt(j)
			cs.Cards = append(cs.Cards, cardLabel(card))
		}
		state.Columns = append(state.Columns, cs)
	}

	for i, s := range b.hand {
		hs := HandState{Label: string(rune(FirstHandLabel + i))}
		if card, ok := s.ActiveCard(); ok {
			hs.Card = cardLabel(card)
		}
		state.Hand = append(state.Hand, hs)
	}

	return state
}

func cardLabel(card Card) string {
	return strings.TrimSpace(card.String())
}
