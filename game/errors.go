package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove indicates a move that breaks the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after the game was decided.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidMoveLimit indicates a move limit already exceeded by the game.
	ErrInvalidMoveLimit = errors.New("invalid move limit")

	// ErrInvalidSquare indicates malformed square coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates malformed move text.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrInvalidPosition indicates a position that cannot occur in play.
	ErrInvalidPosition = errors.New("invalid position")
)

// Reasons a move is rejected. A MoveError carries one of them.
var (
	ErrNotYourPiece  = errors.New("origin does not hold a piece of the side to move")
	ErrNotRookMove   = errors.New("not a move along a row or column")
	ErrPathBlocked   = errors.New("path is blocked")
	ErrThroneEntered = errors.New("only the king may enter the throne")
)

// MoveError reports a rejected move. It matches both its category
// (ErrIllegalMove or ErrGameOver) and its reason with errors.Is.
type MoveError struct {
	Move   Move
	Err    error // ErrIllegalMove or ErrGameOver
	Reason error // nil for ErrGameOver
}

func (e *MoveError) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("%s: %v", e.Move, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Move, e.Err, e.Reason)
}

func (e *MoveError) Unwrap() []error {
	if e.Reason == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Reason}
}
