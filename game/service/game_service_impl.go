package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/matt-harvey/king-albert/game/config"
	"github.com/matt-harvey/king-albert/game/engine"
	"github.com/matt-harvey/king-albert/validate"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	sessions SessionManager
	opts     *config.Options
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager, opts *config.Options) GameService {
	if opts == nil {
		opts = config.Default()
	}
	return &gameServiceImpl{
		sessions: sessions,
		opts:     opts,
	}
}

// CreateGame deals a new game. A zero seed gets a time-based shuffle.
func (s *gameServiceImpl) CreateGame(ctx context.Context, seed int64) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Create("", seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return gameInfo(session), nil
}

// GetGame retrieves a game's summary and current state.
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)
	return gameInfo(session), nil
}

// ListGames returns summaries of all active games, without full board state.
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		info := gameInfo(sess)
		info.State = nil
		result = append(result, info)
	}
	return result, nil
}

// DeleteGame removes a game.
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(gameID)
}

// Move validates and attempts a single movement. An illegal movement is a
// normal, unsuccessful outcome, not an error; errors are reserved for unknown
// games and malformed labels.
func (s *gameServiceImpl) Move(ctx context.Context, gameID, origin, destination string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	movement, err := validate.Movement(origin, destination)
	if err != nil {
		return nil, err
	}

	result := &MoveResult{Movement: movement.String()}
	if sess.Board.Permits(movement) {
		sess.Board.Execute(movement)
		sess.MovesPlayed++
		result.Success = true
		if sess.Board.VictoryState() == engine.Won {
			result.Victory = true
			result.Message = "You won! All four foundations reached the king."
		}
	} else {
		result.Message = fmt.Sprintf("movement %s is not permitted", movement)
	}
	result.State = sess.Board.Snapshot()

	return result, nil
}

// LegalMoves enumerates every movement the board currently permits.
func (s *gameServiceImpl) LegalMoves(ctx context.Context, gameID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	moves := sess.Board.PermittedMoves()
	result := make([]string, 0, len(moves))
	for _, m := range moves {
		result = append(result, m.String())
	}
	return result, nil
}

// GameState returns the structured board state.
func (s *gameServiceImpl) GameState(ctx context.Context, gameID string) (*engine.BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)
	return sess.Board.Snapshot(), nil
}

// Render returns the fixed-width textual board.
func (s *gameServiceImpl) Render(ctx context.Context, gameID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return "", fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)
	return engine.Render(sess.Board, s.opts.ASCII), nil
}

func gameInfo(sess *Session) *GameInfo {
	return &GameInfo{
		ID:             sess.ID,
		Seed:           sess.Seed,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		MovesPlayed:    sess.MovesPlayed,
		Victory:        sess.Board.VictoryState() == engine.Won,
		State:          sess.Board.Snapshot(),
	}
}
