// Command analyze prints quick, human-readable heuristics about King Albert
// deals. It deals a batch of seeded games and summarizes how they open:
// number of legal opening moves, how many aces are immediately playable, and
// how deeply the aces are buried in the columns.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/matt-harvey/king-albert/game/deck"
	"github.com/matt-harvey/king-albert/game/engine"
)

var (
	deals = flag.Int("deals", 100, "number of deals to analyze")
	seed  = flag.Int64("seed", 0, "seed of the first deal (0 for time-based)")
)

func main() {
	flag.Parse()

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	totalOpening := 0
	totalFoundationOpening := 0
	dealsWithPlayableAce := 0
	totalBuriedDepth := 0

	for i := 0; i < *deals; i++ {
		d := deck.New(base + int64(i))
		board, err := engine.NewBoard(d.Cards())
		if err != nil {
			fmt.Printf("Error dealing seed %d: %v\n", d.Seed(), err)
			return
		}

		opening := board.PermittedMoves()
		totalOpening += len(opening)

		foundationMoves := 0
		for _, m := range opening {
			if m.Destination <= engine.LastFoundationLabel {
				foundationMoves++
			}
		}
		totalFoundationOpening += foundationMoves
		if foundationMoves > 0 {
			dealsWithPlayableAce++
		}

		totalBuriedDepth += buriedAceDepth(board.Snapshot())
	}

	n := float64(*deals)
	fmt.Printf("=== Analyzed %d deals (seeds %d..%d) ===\n", *deals, base, base+int64(*deals-1))
	fmt.Printf("Avg legal opening moves:      %.1f\n", float64(totalOpening)/n)
	fmt.Printf("Avg opening foundation moves: %.2f\n", float64(totalFoundationOpening)/n)
	fmt.Printf("Deals with a playable ace:    %d (%.0f%%)\n", dealsWithPlayableAce, 100*float64(dealsWithPlayableAce)/n)
	fmt.Printf("Avg cards covering the aces:  %.1f\n", float64(totalBuriedDepth)/n)
}

// buriedAceDepth sums, over the four aces, the number of cards sitting on top
// of each ace in its column. Aces in the hand or at the bottom of a column
// contribute zero.
func buriedAceDepth(state *engine.BoardState) int {
	depth := 0
	for _, column := range state.Columns {
		for i, card := range column.Cards {
			if len(card) >= 2 && card[0] == 'A' {
				depth += len(column.Cards) - 1 - i
			}
		}
	}
	return depth
}
