package main

import (
	"log"

	"github.com/matt-harvey/king-albert/game/config"
	"github.com/matt-harvey/king-albert/game/service"
	"github.com/matt-harvey/king-albert/game/session"
	"github.com/matt-harvey/king-albert/transport/mcp"
)

// runMCP serves the game to MCP clients over stdio until the client
// disconnects.
func runMCP(ascii bool) error {
	sessions := session.NewManager()
	games := service.NewGameService(sessions, &config.Options{ASCII: ascii})

	log.Printf("Starting %s v%s MCP stdio server", AppName, Version)
	return mcp.NewServer(games).ServeStdio()
}
