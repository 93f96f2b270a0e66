package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/matt-harvey/king-albert/game/config"
	"github.com/matt-harvey/king-albert/game/service"
	"github.com/matt-harvey/king-albert/game/session"
)

func newTestService() service.GameService {
	return service.NewGameService(session.NewManager(), config.Default())
}

func TestCreateAndGetGame(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	info, err := games.CreateGame(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	if info.ID == "" {
		t.Error("Expected a generated game ID")
	}
	if info.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", info.Seed)
	}
	if info.State == nil {
		t.Fatal("Expected board state on the summary")
	}
	if info.Victory {
		t.Error("Expected a fresh game to be ongoing")
	}

	got, err := games.GetGame(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to get game: %v", err)
	}
	if got.ID != info.ID || got.Seed != info.Seed {
		t.Errorf("Expected the created game back, got %+v", got)
	}
}

func TestMove(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	info, err := games.CreateGame(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	moves, err := games.LegalMoves(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to list legal moves: %v", err)
	}
	legal := make(map[string]bool, len(moves))
	for _, m := range moves {
		if len(m) != 2 {
			t.Fatalf("Expected two-letter movement strings, got %q", m)
		}
		legal[m] = true
	}

	// A well-formed movement the board does not permit is an unsuccessful
	// result, not an error. Find one such pair; far fewer than all 208
	// combinations can be legal at once.
	var origin, destination string
	for o := byte('e'); o <= 't' && origin == ""; o++ {
		for d := byte('a'); d <= 'm'; d++ {
			if !legal[string([]byte{o, d})] {
				origin, destination = string(o), string(d)
				break
			}
		}
	}
	result, err := games.Move(ctx, info.ID, origin, destination)
	if err != nil {
		t.Fatalf("Failed to attempt move: %v", err)
	}
	if result.Success {
		t.Errorf("Expected movement %s to be rejected", result.Movement)
	}
	if result.Message == "" {
		t.Error("Expected a message on a rejected movement")
	}
	if result.State == nil {
		t.Error("Expected board state on a rejected movement")
	}

	if len(moves) > 0 {
		result, err := games.Move(ctx, info.ID, moves[0][:1], moves[0][1:])
		if err != nil {
			t.Fatalf("Failed to play a legal move: %v", err)
		}
		if !result.Success {
			t.Errorf("Expected legal movement %s to succeed", moves[0])
		}

		after, err := games.GetGame(ctx, info.ID)
		if err != nil {
			t.Fatalf("Failed to get game: %v", err)
		}
		if after.MovesPlayed != 1 {
			t.Errorf("Expected 1 move played, got %d", after.MovesPlayed)
		}
	}
}

func TestMove_MalformedLabels(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	info, err := games.CreateGame(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	if _, err := games.Move(ctx, info.ID, "1", "a"); err == nil {
		t.Error("Expected error for a malformed origin")
	}
	if _, err := games.Move(ctx, info.ID, "e", "n"); err == nil {
		t.Error("Expected error for a hand-cell destination")
	}
	if _, err := games.Move(ctx, info.ID, "ea", "a"); err == nil {
		t.Error("Expected error for a multi-character label")
	}
}

func TestUnknownGame(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	if _, err := games.GetGame(ctx, "missing"); err == nil {
		t.Error("Expected error getting an unknown game")
	}
	if _, err := games.Move(ctx, "missing", "e", "a"); err == nil {
		t.Error("Expected error moving in an unknown game")
	}
	if _, err := games.LegalMoves(ctx, "missing"); err == nil {
		t.Error("Expected error listing moves of an unknown game")
	}
	if _, err := games.GameState(ctx, "missing"); err == nil {
		t.Error("Expected error reading state of an unknown game")
	}
	if _, err := games.Render(ctx, "missing"); err == nil {
		t.Error("Expected error rendering an unknown game")
	}
}

func TestListGames(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	games.CreateGame(ctx, 1)
	games.CreateGame(ctx, 2)

	list, err := games.ListGames(ctx)
	if err != nil {
		t.Fatalf("Failed to list games: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(list))
	}
	for _, info := range list {
		// Summaries omit the full board state.
		if info.State != nil {
			t.Errorf("Expected no board state in the listing for %s", info.ID)
		}
	}
}

func TestDeleteGame(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	info, err := games.CreateGame(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	if err := games.DeleteGame(ctx, info.ID); err != nil {
		t.Fatalf("Failed to delete game: %v", err)
	}
	if _, err := games.GetGame(ctx, info.ID); err == nil {
		t.Error("Expected the deleted game to be gone")
	}
	if err := games.DeleteGame(ctx, info.ID); err == nil {
		t.Error("Expected error deleting twice")
	}
}

func TestGameStateAndRender(t *testing.T) {
	games := newTestService()
	ctx := context.Background()

	info, err := games.CreateGame(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	state, err := games.GameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to get game state: %v", err)
	}
	if len(state.Foundations) != 4 || len(state.Columns) != 9 || len(state.Hand) != 7 {
		t.Errorf("Expected 4/9/7 locations, got %d/%d/%d",
			len(state.Foundations), len(state.Columns), len(state.Hand))
	}

	rendered, err := games.Render(ctx, info.ID)
	if err != nil {
		t.Fatalf("Failed to render game: %v", err)
	}
	if !strings.Contains(rendered, "a    b    c    d") {
		t.Errorf("Expected foundation labels in the rendering, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "n    o    p    q    r    s    t") {
		t.Errorf("Expected hand labels in the rendering, got:\n%s", rendered)
	}
}
