package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tablut/game"

	"github.com/google/uuid"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNothingToUndo = errors.New("no move to undo")
)

type Option func(s *Session)

// WithBoard starts the session from a copy of b instead of the initial
// position.
func WithBoard(b *game.Board) Option {
	return func(s *Session) {
		if b != nil {
			s.board = b.Copy()
		}
	}
}

// WithMoveLimit decides the game once each side has made n moves.
func WithMoveLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.moveLimit = n
		}
	}
}

// Session owns the authoritative board of one game. Callers only ever see
// copies of it.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu        sync.RWMutex
	board     *game.Board
	moveLimit int
}

func NewSession(options ...Option) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		board:     game.NewBoard(),
	}
	for _, option := range options {
		option(s)
	}
	if s.moveLimit > 0 {
		if err := s.board.SetMoveLimit(s.moveLimit); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	}
	s.UpdatedAt = s.CreatedAt
	return s, nil
}

// Board returns a copy of the current position.
func (s *Session) Board() *game.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Copy()
}

// Play applies move for the side to move. Rejected moves leave the game
// unchanged.
func (s *Session) Play(move game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board.Winner() != game.NoSide {
		return ErrGameOver
	}
	if err := s.board.Apply(move); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Undo takes back the last move, reopening a decided game if needed.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.Undo() {
		return ErrNothingToUndo
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Session) SetMoveLimit(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.SetMoveLimit(n)
}

func (s *Session) Winner() game.Side {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Winner()
}

func (s *Session) Turn() game.Side {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Turn()
}

func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.MoveCount()
}

func (s *Session) RepeatedPosition() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.RepeatedPosition()
}
