// Package service provides the business logic layer for King Albert.
//
// GameService sits between the transports (terminal driver, MCP) and the
// rule engine, providing game isolation and orchestration: it owns the
// permits-then-execute discipline so no transport can ask the board to apply
// an unchecked movement, and it funnels all raw labels through the validate
// package before they reach the engine.
//
// Usage:
//
//	sessions := session.NewManager()
//	games := service.NewGameService(sessions, opts)
//
//	info, err := games.CreateGame(ctx, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := games.Move(ctx, info.ID, "e", "a")
//
// Multiple games can run concurrently; each is identified by a unique
// 4-character ID and keeps independent board state.
package service
