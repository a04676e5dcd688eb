package game

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Initial positions of the attackers.
var InitialAttackers = []Square{
	Sq(0, 3), Sq(0, 4), Sq(0, 5), Sq(1, 4),
	Sq(8, 3), Sq(8, 4), Sq(8, 5), Sq(7, 4),
	Sq(3, 0), Sq(4, 0), Sq(5, 0), Sq(4, 1),
	Sq(3, 8), Sq(4, 8), Sq(5, 8), Sq(4, 7),
}

// Initial positions of the defenders of the king.
var InitialDefenders = []Square{
	NorthThrone, EastThrone, SouthThrone, WestThrone,
	Sq(4, 6), Sq(4, 2), Sq(2, 4), Sq(6, 4),
}

// positionKey is the canonical encoding of a position as a comparable value:
// the side to move followed by one letter per square.
type positionKey [NumSquares + 1]byte

type captured struct {
	sq    Square
	piece Piece
}

// undoRecord is everything Undo needs to reverse one applied move.
type undoRecord struct {
	move      Move
	piece     Piece
	captures  [4]captured
	ncaptures int
	before    positionKey
	winner    Side
	repeated  bool
}

// Board is the state of a Tablut game. It is mutated only by Apply and Undo.
type Board struct {
	cells     [NumSquares]Piece
	turn      Side
	moveCount int
	moveLimit int // <= 0 disables the limit
	winner    Side
	repeated  bool

	history []undoRecord
	seen    map[positionKey]int // positions recorded in history
}

// NewBoard returns a board in the initial position, attackers to move.
func NewBoard() *Board {
	b := &Board{turn: AttackerSide, seen: make(map[positionKey]int)}
	for _, sq := range InitialAttackers {
		b.cells[sq] = Attacker
	}
	for _, sq := range InitialDefenders {
		b.cells[sq] = Defender
	}
	b.cells[Throne] = King
	return b
}

// NewBoardFrom returns a board holding pieces, given by square, with turn
// to move. All other squares are empty. The position has no history.
func NewBoardFrom(turn Side, pieces map[Square]Piece) (*Board, error) {
	if turn != AttackerSide && turn != DefenderSide {
		return nil, fmt.Errorf("%w: side to move %s", ErrInvalidPosition, turn)
	}
	b := &Board{turn: turn, seen: make(map[positionKey]int)}
	kings := 0
	for sq, p := range pieces {
		if sq < 0 || int(sq) >= NumSquares {
			return nil, fmt.Errorf("%w: square %d off the board", ErrInvalidPosition, sq)
		}
		if p == King {
			kings++
		} else if sq == Throne && p != Empty {
			return nil, fmt.Errorf("%w: %s on the throne", ErrInvalidPosition, p)
		}
		b.cells[sq] = p
	}
	switch {
	case kings > 1:
		return nil, fmt.Errorf("%w: %d kings", ErrInvalidPosition, kings)
	case kings == 0:
		b.winner = AttackerSide
	case b.kingOnEdge():
		b.winner = DefenderSide
	}
	return b, nil
}

// Copy returns an independent deep copy of b, history included.
func (b *Board) Copy() *Board {
	c := *b
	c.history = slices.Clone(b.history)
	c.seen = maps.Clone(b.seen)
	if c.seen == nil {
		c.seen = make(map[positionKey]int)
	}
	return &c
}

// Get returns the piece on sq.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// Turn returns the side to move.
func (b *Board) Turn() Side {
	return b.turn
}

// Winner returns the side that has won, or NoSide while the game is in progress.
func (b *Board) Winner() Side {
	return b.winner
}

// RepeatedPosition reports whether the game ended on a repeated position.
func (b *Board) RepeatedPosition() bool {
	return b.repeated
}

// MoveCount returns the number of moves applied and not undone.
func (b *Board) MoveCount() int {
	return b.moveCount
}

// MoveLimit returns the current move limit; zero or less means none.
func (b *Board) MoveLimit() int {
	return b.moveLimit
}

// SetMoveLimit caps the game at 2n moves, after which the side to move wins.
// n <= 0 removes the limit. A positive n with 2n <= MoveCount() is rejected.
func (b *Board) SetMoveLimit(n int) error {
	if n > 0 && 2*n <= b.moveCount {
		return fmt.Errorf("%w: %d (%d moves already made)", ErrInvalidMoveLimit, n, b.moveCount)
	}
	b.moveLimit = n
	return nil
}

// KingSquare locates the king. ok is false once the king has been captured.
func (b *Board) KingSquare() (sq Square, ok bool) {
	for i, p := range b.cells {
		if p == King {
			return Square(i), true
		}
	}
	return NoSquare, false
}

func (b *Board) kingOnEdge() bool {
	sq, ok := b.KingSquare()
	return ok && sq.IsEdge()
}

// Count returns the number of pieces side controls. The king counts once
// for the defenders.
func (b *Board) Count(side Side) int {
	n := 0
	for _, p := range b.cells {
		if p != Empty && p.Side() == side {
			n++
		}
	}
	return n
}

// ThroneBesieged reports whether at least three of the throne's four
// neighbours hold attackers.
func (b *Board) ThroneBesieged() bool {
	n := 0
	for _, sq := range [4]Square{NorthThrone, EastThrone, SouthThrone, WestThrone} {
		if b.cells[sq] == Attacker {
			n++
		}
	}
	return n >= 3
}

func (b *Board) key() positionKey {
	var k positionKey
	k[0] = b.turn.Letter()
	for i, p := range b.cells {
		k[i+1] = p.Letter()
	}
	return k
}
