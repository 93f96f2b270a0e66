package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/matt-harvey/king-albert/game/deck"
	"github.com/matt-harvey/king-albert/game/engine"
)

// playoutResult summarizes one random playout of a deal.
type playoutResult struct {
	moves     []engine.Movement
	founded   int
	won       bool
	exhausted bool
}

// runSolve repeatedly plays the same deal with a greedy randomized policy and
// reports the best playout found. Foundation moves are always taken first;
// otherwise a random legal move is played. A playout ends on victory, when no
// legal move remains, or at the move cap (shuffling between columns can
// oscillate forever).
func runSolve(seed int64, attempts, maxMoves int, ascii bool) error {
	d := deck.New(seed)
	fmt.Printf("Solving deal with seed %d (%d playouts, %d-move cap)\n\n", d.Seed(), attempts, maxMoves)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var best playoutResult

	for i := 0; i < attempts; i++ {
		result, err := playout(d, rng, maxMoves)
		if err != nil {
			return err
		}
		if result.founded > best.founded {
			best = result
		}
		if best.won {
			break
		}
	}

	if best.won {
		fmt.Printf("Won in %d moves:\n", len(best.moves))
		for i, m := range best.moves {
			if i > 0 && i%13 == 0 {
				fmt.Println()
			}
			fmt.Printf("%s ", m)
		}
		fmt.Println()
		return nil
	}

	fmt.Printf("No winning line found. Best playout reached %d/52 foundation cards in %d moves", best.founded, len(best.moves))
	if best.exhausted {
		fmt.Print(" before running out of legal moves")
	}
	fmt.Println(".")
	return nil
}

// playout plays one randomized game over a fresh board dealt from d.
func playout(d *deck.Deck, rng *rand.Rand, maxMoves int) (playoutResult, error) {
	board, err := engine.NewBoard(d.Cards())
	if err != nil {
		return playoutResult{}, err
	}

	var result playoutResult
	for len(result.moves) < maxMoves {
		legal := board.PermittedMoves()
		if len(legal) == 0 {
			result.exhausted = true
			break
		}

		move := pickMove(legal, rng)
		board.Execute(move)
		result.moves = append(result.moves, move)

		if board.VictoryState() == engine.Won {
			result.won = true
			break
		}
	}

	result.founded = foundationCards(board)
	return result, nil
}

// pickMove prefers foundation destinations, then picks uniformly.
func pickMove(legal []engine.Movement, rng *rand.Rand) engine.Movement {
	var toFoundation []engine.Movement
	for _, m := range legal {
		if m.Destination <= engine.LastFoundationLabel {
			toFoundation = append(toFoundation, m)
		}
	}
	if len(toFoundation) > 0 {
		return toFoundation[rng.Intn(len(toFoundation))]
	}
	return legal[rng.Intn(len(legal))]
}

// foundationCards counts cards settled on foundations.
func foundationCards(board *engine.Board) int {
	total := 0
	for _, f := range board.Snapshot().Foundations {
		total += f.TopRank
	}
	return total
}
