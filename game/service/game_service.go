package service

import (
	"context"
	"time"

	"github.com/matt-harvey/king-albert/game/engine"
)

// GameService defines all game-related operations exposed to transports.
type GameService interface {
	// Game lifecycle
	CreateGame(ctx context.Context, seed int64) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DeleteGame(ctx context.Context, gameID string) error

	// Play
	Move(ctx context.Context, gameID, origin, destination string) (*MoveResult, error)
	LegalMoves(ctx context.Context, gameID string) ([]string, error)

	// State
	GameState(ctx context.Context, gameID string) (*engine.BoardState, error)
	Render(ctx context.Context, gameID string) (string, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, seed int64) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// Session is one active game: a dealt board plus bookkeeping.
type Session struct {
	ID             string
	Board          *engine.Board
	Seed           int64
	CreatedAt      time.Time
	LastAccessedAt time.Time
	MovesPlayed    int
}

// GameInfo is the serializable summary of a session.
type GameInfo struct {
	ID             string             `json:"id"`
	Seed           int64              `json:"seed"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	MovesPlayed    int                `json:"moves_played"`
	Victory        bool               `json:"victory"`
	State          *engine.BoardState `json:"state,omitempty"`
}

// MoveResult reports the outcome of a single move attempt.
type MoveResult struct {
	Movement string             `json:"movement"`
	Success  bool               `json:"success"`
	Victory  bool               `json:"victory"`
	Message  string             `json:"message,omitempty"`
	State    *engine.BoardState `json:"state"`
}
