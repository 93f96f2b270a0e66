// Package engine provides the core rule engine for King Albert patience.
//
// The engine package implements the board and its movement rules:
//   - Card, suit and color value types
//   - The Location capability contract and its three implementations
//     (Foundation, Column, SpotInHand)
//   - Board construction from a dealt deck
//   - Movement legality checking, execution and exhaustive enumeration
//   - Win detection
//
// Core Types:
//
// Board owns one Foundation per suit, nine Columns and seven SpotInHand
// cells, addressed by single-character labels: a-d for foundations, e-m for
// columns, n-t for hand cells. Movement is the only command type the engine
// accepts; it names an origin and a destination label and the card moved is
// always the origin's active card.
//
// Usage:
//
//	d := deck.New(0)
//	board, err := engine.NewBoard(d.Cards())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m := engine.Movement{Origin: 'e', Destination: 'a'}
//	if board.Permits(m) {
//		board.Execute(m)
//	}
//	if board.VictoryState() == engine.Won {
//		// all four foundations reached the king
//	}
//
// Contracts:
//
// The engine assumes pre-validated labels: resolving a label outside a-t
// panics. Execute must only be called for a movement Permits accepts; it
// re-checks and panics on violation so an illegal transfer can never be half
// applied. Both contracts are the driver's responsibility to uphold, via the
// validate package.
package engine
