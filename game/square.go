package game

import "fmt"

// Size is the number of squares on a side of the board.
const Size = 9

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// Square identifies one cell of the board, indexed row*Size+col.
type Square int8

// NoSquare is returned by geometry helpers that fall off the board.
const NoSquare Square = -1

// Directions used by RookMove, in the order captures and move
// generation scan them.
const (
	North = iota
	East
	South
	West
)

var (
	dcol = [4]int{0, 1, 0, -1}
	drow = [4]int{1, 0, -1, 0}
)

// The throne and its four orthogonal neighbours.
var (
	Throne      = Sq(4, 4)
	NorthThrone = Sq(4, 5)
	EastThrone  = Sq(5, 4)
	SouthThrone = Sq(4, 3)
	WestThrone  = Sq(3, 4)
)

// Squares lists every square in index order.
var Squares = func() []Square {
	squares := make([]Square, NumSquares)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}()

// Sq returns the square at (col, row). Both must be in [0, Size).
func Sq(col, row int) Square {
	if !onBoard(col, row) {
		panic(fmt.Sprintf("square (%d, %d) off the board", col, row))
	}
	return Square(row*Size + col)
}

func onBoard(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// ParseSquare parses coordinates such as "e5".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	col, row := int(s[0]-'a'), int(s[1]-'1')
	if !onBoard(col, row) {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Sq(col, row), nil
}

func (s Square) Col() int   { return int(s) % Size }
func (s Square) Row() int   { return int(s) / Size }
func (s Square) Index() int { return int(s) }

// IsEdge reports whether s lies on the outer ring of the board.
func (s Square) IsEdge() bool {
	c, r := s.Col(), s.Row()
	return c == 0 || r == 0 || c == Size-1 || r == Size-1
}

// IsThroneArea reports whether s is the throne or one of its four neighbours.
func (s Square) IsThroneArea() bool {
	return s == Throne || s == NorthThrone || s == EastThrone || s == SouthThrone || s == WestThrone
}

// RookMove returns the square dist steps from s in direction dir.
func (s Square) RookMove(dir, dist int) (Square, bool) {
	col, row := s.Col()+dcol[dir]*dist, s.Row()+drow[dir]*dist
	if !onBoard(col, row) {
		return NoSquare, false
	}
	return Sq(col, row), true
}

// IsRookMove reports whether s and to are distinct squares on one row or column.
func (s Square) IsRookMove(to Square) bool {
	return s != to && (s.Col() == to.Col() || s.Row() == to.Row())
}

// Between returns the square midway between s and to, which must be two
// squares apart on a row or column.
func (s Square) Between(to Square) Square {
	return Sq((s.Col()+to.Col())/2, (s.Row()+to.Row())/2)
}

func (s Square) String() string {
	if s < 0 || int(s) >= NumSquares {
		return "??"
	}
	return string([]byte{byte('a' + s.Col()), byte('1' + s.Row())})
}
