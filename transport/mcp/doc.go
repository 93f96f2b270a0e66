// Package mcp exposes King Albert to MCP clients over stdio.
//
// The server registers one tool per game operation (new_game, board, move,
// legal_moves, list_games, delete_game, game_instructions) and calls the game
// service directly. All movement input arrives as raw label strings and is
// validated by the service before it reaches the engine.
package mcp
