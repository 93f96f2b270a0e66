package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/matt-harvey/king-albert/game/service"
)

// Server exposes King Albert over MCP, calling the game service directly.
type Server struct {
	games     service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server wired to the given game service.
func NewServer(games service.GameService) *Server {
	s := &Server{games: games}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools.
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"King Albert",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`King Albert - MCP Interface

A single-player patience. 52 cards are dealt onto 20 labelled locations:
foundations a-d, tableau columns e-m, hand cells n-t.

GAME OBJECTIVE:
Build all four foundations from ace to king. The game is won when every
foundation holds its king.

AVAILABLE TOOLS:
- new_game: Deal a new game (optional seed for a reproducible shuffle)
- board: Show the rendered board for a game
- move: Move one card, naming an origin label (e-t) and a destination label (a-m)
- legal_moves: List every movement the board currently permits
- list_games: List all active games
- delete_game: Remove a game
- game_instructions: Get the full rules

Use legal_moves when you are stuck; an empty list means the deal is lost.`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Deal a new game of King Albert",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Shuffle seed for a reproducible deal (optional, 0 or omitted for random)",
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "board",
		Description: "Show the rendered board for a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, s.handleBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the active card from one location to another",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
				"origin": map[string]interface{}{
					"type":        "string",
					"description": "Origin label, a letter from e to t",
				},
				"destination": map[string]interface{}{
					"type":        "string",
					"description": "Destination label, a letter from a to m",
				},
			},
			Required: []string{"game_id", "origin", "destination"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List every movement the board currently permits",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, s.handleLegalMoves)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListGames)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_game",
		Description: "Remove a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, s.handleDeleteGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the full rules of King Albert",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	seed := int64(0)
	if v, ok := args["seed"].(float64); ok {
		seed = int64(v)
	}

	info, err := s.games.CreateGame(ctx, seed)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rendered, err := s.games.Render(ctx, info.ID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Dealt game %s (seed %d)\n\n%s", info.ID, info.Seed, rendered)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	rendered, err := s.games.Render(ctx, gameID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(rendered), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)
	origin, _ := args["origin"].(string)
	destination, _ := args["destination"].(string)

	result, err := s.games.Move(ctx, gameID, origin, destination)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rendered, err := s.games.Render(ctx, gameID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	if result.Success {
		fmt.Fprintf(&b, "✓ Moved %s\n", result.Movement)
	} else {
		fmt.Fprintf(&b, "✗ Movement %s is not permitted\n", result.Movement)
	}
	if result.Message != "" {
		b.WriteString(result.Message + "\n")
	}
	b.WriteString("\n" + rendered)
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	moves, err := s.games.LegalMoves(ctx, gameID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(moves) == 0 {
		return mcp.NewToolResultText("No legal moves remain; this deal is lost."), nil
	}
	result := fmt.Sprintf("Legal moves (%d): %s", len(moves), strings.Join(moves, ", "))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active games (%d):\n\n", len(games))
	for _, g := range games {
		status := "ongoing"
		if g.Victory {
			status = "won"
		}
		fmt.Fprintf(&b, "- %s (seed %d, moves %d, %s, created %s)\n",
			g.ID, g.Seed, g.MovesPlayed, status, g.CreatedAt.Format("15:04:05"))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleDeleteGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	if err := s.games.DeleteGame(ctx, gameID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted game %s", gameID)), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `King Albert - Complete Rules

THE BOARD:
52 cards are dealt onto 20 labelled locations.
- Foundations a-d, one per suit in the order spades, hearts, diamonds, clubs.
  Each starts empty and must be built up in suit from ace to king.
- Columns e-m, dealt 1, 2, ... 9 cards respectively (45 cards).
- Hand cells n-t, one card each (the remaining 7 cards).

MOVING:
A move names an origin (e-t) and a destination (a-m). Only the active card
moves: the last card of a column, or the card in a hand cell.
- A foundation accepts only the next rank of its own suit (ace when empty).
- A column accepts any card when empty; otherwise the incoming card must be
  one rank lower than the column's active card and of the opposite color.
- Hand cells never accept a card. Once a hand cell is emptied it stays empty.
- Cards never come back off a foundation.

WINNING:
The game is won when all four foundations reach the king. If legal_moves
returns nothing before then, the deal is lost.

STRATEGY NOTES:
- Free the aces early; they are the only cards an empty foundation accepts.
- Empty columns are powerful: they accept any card, so use them to unbury
  cards you need.
- Hand cells are a one-way reserve. Spend them late, when a specific card
  unlocks a sequence.
- Before committing a card to a foundation, check whether a column still
  needs it to host a lower card of the opposite color.`

	return mcp.NewToolResultText(instructions), nil
}
